package storage

import (
	"context"
	"errors"
	"io"
	"medilabx-service/internal/pkg/dto/responses"
	"medilabx-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePutter struct {
	bucket      string
	objectName  string
	body        []byte
	contentType string
	err         error
}

func (f *fakePutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.err != nil {
		return minio.UploadInfo{}, f.err
	}
	body, _ := io.ReadAll(reader)
	f.bucket = bucketName
	f.objectName = objectName
	f.body = body
	f.contentType = opts.ContentType
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func TestArchiveReport(t *testing.T) {
	document := &responses.ReportDocument{
		ReportID: 42,
		Content:  []byte("%PDF-1.7"),
	}

	t.Run("stores under a timestamped key", func(t *testing.T) {
		putter := &fakePutter{}
		archive := NewMinioReportArchive(putter, "medilabx-reports", zap.NewNop()).(*minioReportArchive)
		archive.now = func() time.Time { return time.Date(2024, 3, 9, 10, 11, 12, 0, time.UTC) }

		objectName, err := archive.ArchiveReport(context.Background(), document)
		require.NoError(t, err)
		assert.Equal(t, "reports/42/20240309T101112Z.pdf", objectName)
		assert.Equal(t, "medilabx-reports", putter.bucket)
		assert.Equal(t, []byte("%PDF-1.7"), putter.body)
		assert.Equal(t, "application/pdf", putter.contentType)
	})

	t.Run("put failure", func(t *testing.T) {
		putter := &fakePutter{err: errors.New("bucket gone")}
		archive := NewMinioReportArchive(putter, "medilabx-reports", zap.NewNop())

		_, err := archive.ArchiveReport(context.Background(), document)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.DevMessage, "medilabx-reports")
	})
}
