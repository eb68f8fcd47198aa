package dependencies

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"github.com/tencentyun/cos-go-sdk-v5"
	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/config"
)

// ArchiveStore 保存被物理清理的评论快照。
// 清理任务只在归档成功后才会真正删除数据。
type ArchiveStore interface {
	// PutArchive 上传归档内容，objectKey 会自动加上配置的前缀，返回对象的访问 URL
	PutArchive(ctx context.Context, objectKey string, body []byte) (string, error)
}

type cosArchiveStore struct {
	client              *cos.Client
	publicAccessURLBase *url.URL
	prefix              string
	logger              *zap.Logger
}

// InitCOS 初始化腾讯云 COS 归档存储。调用方应先用 cfg.Enabled() 判断是否配置。
func InitCOS(cfg *config.COSConfig, logger *core.ZapLogger) (ArchiveStore, error) {
	if cfg == nil || !cfg.Enabled() {
		return nil, fmt.Errorf("COS 配置不完整，缺少关键字段 (SecretID, SecretKey, BucketName, AppID, Region)")
	}

	sdkBucketURLStr := fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", cfg.BucketName, cfg.AppID, cfg.Region)
	sdkURL, err := url.Parse(sdkBucketURLStr)
	if err != nil {
		return nil, fmt.Errorf("解析 COS 存储桶 SDK 操作 URL '%s' 失败: %w", sdkBucketURLStr, err)
	}

	// 配置了 BaseURL (CDN 或自定义域名) 时用它拼接访问地址，否则使用存储桶默认域名
	publicBase := sdkURL
	if cfg.BaseURL != "" {
		pu, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("解析提供的 COS 公共访问 BaseURL '%s' 失败: %w", cfg.BaseURL, err)
		}
		publicBase = pu
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: sdkURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		},
	})

	logger.Info("COS 归档存储初始化成功",
		zap.String("存储桶名称", cfg.BucketName),
		zap.String("地域", cfg.Region),
		zap.String("归档前缀", cfg.ArchivePrefix),
	)

	return &cosArchiveStore{
		client:              client,
		publicAccessURLBase: publicBase,
		prefix:              cfg.ArchivePrefix,
		logger:              logger.Logger(),
	}, nil
}

// buildPublicObjectURL 构建对象的完整访问 URL
func (c *cosArchiveStore) buildPublicObjectURL(objectKey string) string {
	basePath := c.publicAccessURLBase.Path
	if basePath != "/" && !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	finalURL := *c.publicAccessURLBase
	finalURL.Path = basePath + strings.TrimPrefix(objectKey, "/")
	return finalURL.String()
}

func (c *cosArchiveStore) PutArchive(ctx context.Context, objectKey string, body []byte) (string, error) {
	key := c.prefix + strings.TrimPrefix(objectKey, "/")
	c.logger.Info("开始上传归档到 COS", zap.String("对象键", key), zap.Int("大小", len(body)))

	opts := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   "application/json",
			ContentLength: int64(len(body)),
		},
	}
	resp, err := c.client.Object.Put(ctx, key, bytes.NewReader(body), opts)
	if err != nil {
		c.logger.Error("COS 归档上传 API 调用失败", zap.String("对象键", key), zap.Error(err))
		return "", fmt.Errorf("上传归档 '%s' 到 COS 失败: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errMsgBytes, _ := io.ReadAll(resp.Body)
		c.logger.Error("COS 归档上传返回非200状态码",
			zap.String("对象键", key),
			zap.Int("状态码", resp.StatusCode),
			zap.String("响应信息", string(errMsgBytes)),
		)
		return "", fmt.Errorf("COS 归档上传失败，状态码: %d, 响应: %s", resp.StatusCode, string(errMsgBytes))
	}

	publicURL := c.buildPublicObjectURL(key)
	c.logger.Info("COS 归档上传成功", zap.String("对象键", key), zap.String("URL", publicURL))
	return publicURL, nil
}
