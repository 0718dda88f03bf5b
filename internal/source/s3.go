// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/snapdiff/snapdiff/internal/config"
	"github.com/snapdiff/snapdiff/internal/log"
)

// fetchS3 downloads s3://bucket/key. Profile and region come from config
// ("remote.s3.profile"/"remote.s3.region") and fall back to the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS).
func fetchS3(ctx context.Context, spec string) ([]byte, error) {
	bucket, key, err := splitS3(spec)
	if err != nil {
		return nil, err
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if profile, err := config.GetString("remote.s3.profile", ""); err == nil && profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(profile))
	}
	if region, err := config.GetString("remote.s3.region", ""); err == nil && region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	log.Debugf("aws config loaded: region=%s", cfg.Region)

	client := s3v2.NewFromConfig(cfg)
	obj, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3 object: %w", err)
	}
	defer obj.Body.Close()

	body, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3 object: %w", err)
	}
	return body, nil
}

func splitS3(spec string) (string, string, error) {
	rest := strings.TrimPrefix(spec, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 spec %q, want s3://bucket/key", spec)
	}
	return bucket, key, nil
}
