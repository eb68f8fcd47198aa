package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/service"
)

const seederActor = "system:seeder"

// Seed 通过服务层生成测试评论，并随机分布到各个审核状态，部分评论附带举报。
// 评论 ID 以当前时间为基数，重复运行不会冲突。
func Seed(ctx context.Context, moderationSvc service.CommentModerationService, reportSvc service.ReportService, logger *zap.Logger, numComments int) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("数量", numComments))

	baseID := uint64(time.Now().Unix()) * 1000
	postIDs := make([]uint64, 10)
	for i := range postIDs {
		postIDs[i] = uint64(gofakeit.Number(1, 100000))
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 10)

	for i := 0; i < numComments; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			id := baseID + uint64(itemIndex) + 1
			comment := fakeComment(id, postIDs[gofakeit.Number(0, len(postIDs)-1)])
			if err := moderationSvc.Ingest(ctx, comment); err != nil {
				logger.Error(fmt.Sprintf("创建评论 %d/%d 失败", itemIndex+1, numComments), zap.Error(err))
				return
			}

			// 状态分布：约 40% 保持 pending，其余随机为 approved / rejected / spam
			if status := randomStatus(); status != enums.CommentPending {
				if _, err := moderationSvc.SetStatus(ctx, id, status, seederActor); err != nil {
					logger.Warn("设置评论状态失败", zap.Uint64("commentID", id), zap.Error(err))
				}
			}
			if gofakeit.Number(1, 10) == 1 {
				if _, err := moderationSvc.SoftDelete(ctx, id, seederActor); err != nil {
					logger.Warn("软删除评论失败", zap.Uint64("commentID", id), zap.Error(err))
				}
			}
			if gofakeit.Number(1, 100) <= 15 {
				seedReport(ctx, reportSvc, logger, id)
			}
		}(i)
	}

	wg.Wait()
	if err := moderationSvc.RefreshStats(ctx); err != nil {
		logger.Warn("刷新统计缓存失败", zap.Error(err))
	}
	logger.Info("测试数据填充完毕 (通过服务层)。")
}

func fakeComment(id, postID uint64) *entities.Comment {
	c := &entities.Comment{
		ID:            id,
		PostID:        postID,
		Body:          gofakeit.Paragraph(1, gofakeit.Number(1, 4), 12, " "),
		LikesCount:    int64(gofakeit.Number(0, 200)),
		DislikesCount: int64(gofakeit.Number(0, 30)),
		RepliesCount:  int64(gofakeit.Number(0, 15)),
		CreatedAt:     gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now()),
	}
	if gofakeit.Bool() {
		uid := uuid.New().String()
		c.AuthorUserID = &uid
	} else {
		c.GuestName = gofakeit.Username()
		c.GuestEmail = gofakeit.Email()
	}
	return c
}

func randomStatus() enums.CommentStatus {
	switch n := gofakeit.Number(1, 10); {
	case n <= 4:
		return enums.CommentPending
	case n <= 7:
		return enums.CommentApproved
	case n == 8:
		return enums.CommentRejected
	default:
		return enums.CommentSpam
	}
}

func seedReport(ctx context.Context, reportSvc service.ReportService, logger *zap.Logger, commentID uint64) {
	categories := enums.AllReportCategories
	priorities := []enums.ReportPriority{enums.PriorityHigh, enums.PriorityMedium, enums.PriorityLow}

	report := &entities.CommentReport{
		ID:          commentID,
		CommentID:   commentID,
		Category:    categories[gofakeit.Number(0, len(categories)-1)],
		Priority:    priorities[gofakeit.Number(0, len(priorities)-1)],
		Reason:      gofakeit.Sentence(gofakeit.Number(3, 8)),
		Description: gofakeit.Paragraph(1, 2, 10, " "),
		CreatedAt:   gofakeit.DateRange(time.Now().AddDate(0, -1, 0), time.Now()),
	}
	if gofakeit.Bool() {
		uid := uuid.New().String()
		report.ReporterUserID = &uid
	} else {
		report.ReporterIP = gofakeit.IPv4Address()
	}
	if err := reportSvc.Ingest(ctx, report); err != nil {
		logger.Warn("创建举报失败", zap.Uint64("commentID", commentID), zap.Error(err))
		return
	}

	// 约三分之一的举报直接处理掉
	if gofakeit.Number(1, 3) == 1 {
		outcome := enums.ReportResolved
		if gofakeit.Bool() {
			outcome = enums.ReportDismissed
		}
		if _, err := reportSvc.Resolve(ctx, report.ID, outcome, gofakeit.Sentence(5), seederActor); err != nil {
			logger.Warn("处理举报失败", zap.Uint64("reportID", report.ID), zap.Error(err))
		}
	}
}
