package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

type fakeS3 struct {
	put     *s3.PutObjectInput
	body    []byte
	objects map[string][]byte
	deleted []string
	putErr  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.put = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{ETag: aws.String(`"etag-1"`)}, nil
}

func (f *fakeS3) UploadPart(context.Context, *s3.UploadPartInput, ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errors.New("multipart not expected")
}

func (f *fakeS3) CreateMultipartUpload(context.Context, *s3.CreateMultipartUploadInput, ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errors.New("multipart not expected")
}

func (f *fakeS3) CompleteMultipartUpload(context.Context, *s3.CompleteMultipartUploadInput, ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errors.New("multipart not expected")
}

func (f *fakeS3) AbortMultipartUpload(context.Context, *s3.AbortMultipartUploadInput, ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return &s3.AbortMultipartUploadOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

type fakePresigner struct {
	expiry time.Duration
}

func (p *fakePresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	var opts s3.PresignOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	p.expiry = opts.Expires
	return &v4.PresignedHTTPRequest{URL: "https://signed.example/" + aws.ToString(in.Key)}, nil
}

func TestUpload_SetsDownloadName(t *testing.T) {
	api := &fakeS3{}
	store := NewFromAPI(api, &fakePresigner{}, 8, 2)

	out, err := store.Upload(context.Background(), port.UploadInput{
		Bucket:      "cmc-reports",
		Key:         "reports/Reporte_CMC_1.docx",
		Body:        bytes.NewReader([]byte("docx")),
		ContentType: domain.MimeDocx,
		Size:        4,
		Filename:    "Reporte_CMC_1.docx",
	})
	require.NoError(t, err)

	require.NotNil(t, api.put)
	assert.Equal(t, "cmc-reports", aws.ToString(api.put.Bucket))
	assert.Equal(t, "reports/Reporte_CMC_1.docx", aws.ToString(api.put.Key))
	assert.Equal(t, domain.MimeDocx, aws.ToString(api.put.ContentType))
	assert.Equal(t, `attachment; filename="Reporte_CMC_1.docx"`, aws.ToString(api.put.ContentDisposition))
	assert.Equal(t, []byte("docx"), api.body)
	assert.Equal(t, `"etag-1"`, out.ETag)
	assert.NotEmpty(t, out.Location)
}

func TestUpload_Failure(t *testing.T) {
	store := NewFromAPI(&fakeS3{putErr: errors.New("access denied")}, &fakePresigner{}, 0, 0)

	_, err := store.Upload(context.Background(), port.UploadInput{
		Bucket: "b", Key: "k", Body: bytes.NewReader([]byte("x")), ContentType: "image/png",
	})
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestDownload(t *testing.T) {
	api := &fakeS3{objects: map[string][]byte{"drafts/d1/slots/s1": []byte("png")}}
	store := NewFromAPI(api, &fakePresigner{}, 0, 0)

	data, err := store.Download(context.Background(), "evidence", "drafts/d1/slots/s1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	_, err = store.Download(context.Background(), "evidence", "drafts/d1/slots/missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	api := &fakeS3{}
	store := NewFromAPI(api, &fakePresigner{}, 0, 0)

	require.NoError(t, store.Delete(context.Background(), "evidence", "drafts/d1/slots/s1"))
	assert.Equal(t, []string{"drafts/d1/slots/s1"}, api.deleted)
}

func TestGetPresignedURL(t *testing.T) {
	presigner := &fakePresigner{}
	store := NewFromAPI(&fakeS3{}, presigner, 0, 0)

	url, err := store.GetPresignedURL(context.Background(), "cmc-reports", "reports/r.docx", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/reports/r.docx", url)
	assert.Equal(t, 15*time.Minute, presigner.expiry)
}
