package storage

import (
	"bytes"
	"context"
	"io"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/responses"
	"medilabx-service/internal/pkg/exceptions"
	"medilabx-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectPutter is the part of *minio.Client the archive needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioReportArchive struct {
	Client     ObjectPutter
	BucketName string
	Log        *zap.Logger
	now        func() time.Time
}

func NewMinioReportArchive(client ObjectPutter, bucketName string, logger *zap.Logger) contracts.ReportArchive {
	return &minioReportArchive{
		Client:     client,
		BucketName: bucketName,
		Log:        logger,
		now:        time.Now,
	}
}

func (a *minioReportArchive) ArchiveReport(ctx context.Context, document *responses.ReportDocument) (string, error) {
	requestID := utils.GetRequestID(ctx)
	a.Log.Info("minioReportArchive.ArchiveReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReportIDKey, document.ReportID),
	)

	objectName := utils.GenerateReportArchiveObjectName(document.ReportID, a.now())
	contentType := document.ContentType
	if contentType == "" {
		contentType = constvars.MIMEApplicationPDF
	}

	_, err := a.Client.PutObject(
		ctx,
		a.BucketName,
		objectName,
		bytes.NewReader(document.Content),
		int64(len(document.Content)),
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"report-id": strconv.FormatInt(document.ReportID, 10),
			},
		},
	)
	if err != nil {
		a.Log.Error("minioReportArchive.ArchiveReport error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, a.BucketName)
	}

	a.Log.Info("minioReportArchive.ArchiveReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return objectName, nil
}
