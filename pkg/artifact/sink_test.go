package artifact

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/hospital-atlas/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPutObject struct {
	mock.Mock
}

func (m *mockPutObject) PutObject(
	ctx context.Context,
	params *s3.PutObjectInput,
	optFns ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func TestFileSink_Put(t *testing.T) {
	// Given
	dir := filepath.Join(t.TempDir(), "reports")
	sink := NewFileSink(dir)

	// When
	location, err := sink.Put(context.Background(), "Rapport_mensuel_2025-01-31.csv", []byte("a;b\n"))

	// Then
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Rapport_mensuel_2025-01-31.csv"), location)
	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "a;b\n", string(data))
}

func TestFileSink_RejectsPaths(t *testing.T) {
	sink := NewFileSink(t.TempDir())

	for _, name := range []string{"", "..", "../escape.csv", `dir\file.pdf`} {
		_, err := sink.Put(context.Background(), name, nil)
		assert.Error(t, err, name)
	}
}

func TestS3Sink_Put(t *testing.T) {
	// Given
	client := &mockPutObject{}
	var body []byte
	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Bucket) == "hospital-reports" &&
			aws.ToString(in.Key) == "2025/janvier/report.pdf" &&
			aws.ToString(in.ContentType) == "application/pdf"
	})).Run(func(args mock.Arguments) {
		in := args.Get(1).(*s3.PutObjectInput)
		body, _ = io.ReadAll(in.Body)
	}).Return(&s3.PutObjectOutput{}, nil)
	sink := NewS3Sink(client, "hospital-reports", "2025/janvier")

	// When
	location, err := sink.Put(context.Background(), "report.pdf", []byte("%PDF-1.3"))

	// Then
	require.NoError(t, err)
	assert.Equal(t, "s3://hospital-reports/2025/janvier/report.pdf", location)
	assert.Equal(t, "%PDF-1.3", string(body))
	client.AssertExpectations(t)
}

func TestS3Sink_PutError(t *testing.T) {
	client := &mockPutObject{}
	client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))
	sink := NewS3Sink(client, "bucket", "")

	_, err := sink.Put(context.Background(), "report.csv", []byte("x"))

	assert.EqualError(t, err, "failed to upload to s3: access denied")
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", contentType("a.CSV"))
	assert.Equal(t, "application/pdf", contentType("a.pdf"))
	assert.Equal(t, "application/octet-stream", contentType("a.bin"))
}

func TestNewSink_Directory(t *testing.T) {
	dir := t.TempDir()

	sink, err := NewSink(context.Background(), config.ReportConfig{OutputDir: dir})

	require.NoError(t, err)
	assert.IsType(t, &FileSink{}, sink)
}
