package database

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := NewAWSConfigFromEnv(context.Background(), dynamodb.ServiceID, os.Getenv("DYNAMODB_ENDPOINT"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create dynamodb config")
	}
	return dynamodb.NewFromConfig(cfg)
}

// ConnectS3 creates an S3 client for the quote document artifact store.
// S3_ENDPOINT supports pointing at localstack/minio in development.
func ConnectS3() *s3.Client {
	endpoint := os.Getenv("S3_ENDPOINT")
	cfg, err := NewAWSConfigFromEnv(context.Background(), s3.ServiceID, endpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create s3 config")
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		// Path-style addressing keeps local S3 stand-ins working.
		o.UsePathStyle = endpoint != ""
	})
}

func NewAWSConfigFromEnv(ctx context.Context, serviceID, endpoint string) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")

	// Local service emulators do not validate credentials, but the AWS SDK
	// requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == serviceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
