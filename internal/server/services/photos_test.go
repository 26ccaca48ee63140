package services

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sc "github.com/hsaleh/talentdesk/internal/server/config"
)

func testPhotoService() *PhotoService {
	return NewPhotoService(&sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "photos",
	})
}

func stubPresignStack(t *testing.T) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://minio/put/" + *in.Key}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://minio/get/" + *in.Key}, nil
	}
}

func TestGetPresignedPutURL(t *testing.T) {
	stubPresignStack(t)
	svc := testPhotoService()

	key, url, err := svc.GetPresignedPutURL(context.Background(), "user-1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "photos/user-1/"), "key %q must be scoped to the user", key)
	assert.Equal(t, "http://minio/put/"+key, url)
}

func TestGetPresignedPutURL_KeysAreUnique(t *testing.T) {
	stubPresignStack(t)
	svc := testPhotoService()

	k1, _, err := svc.GetPresignedPutURL(context.Background(), "user-1")
	require.NoError(t, err)
	k2, _, err := svc.GetPresignedPutURL(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}

func TestGetPresignedGetURL(t *testing.T) {
	stubPresignStack(t)
	svc := testPhotoService()

	url, err := svc.GetPresignedGetURL(context.Background(), "photos/user-1/2024/6/1/abc")
	require.NoError(t, err)
	assert.Equal(t, "http://minio/get/photos/user-1/2024/6/1/abc", url)
}
