package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Config holds the settings for an S3-compatible object store.
type S3Config struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
}

// FileStore saves uploaded files either to local disk (served by the
// router) or to an S3-compatible bucket when one is configured.
type FileStore struct {
	Dir string
	S3  *S3Config
}

// Save writes the file under folder/filename and returns its public URL.
func (fs *FileStore) Save(data []byte, folder, filename, contentType string) (string, error) {
	if fs.S3 != nil {
		return fs.saveToS3(data, folder, filename, contentType)
	}
	return fs.saveToDisk(data, folder, filename)
}

func (fs *FileStore) saveToDisk(data []byte, folder, filename string) (string, error) {
	saveDir := filepath.Join(fs.Dir, folder)
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return "", err
	}

	savePath := filepath.Join(saveDir, filename)
	if err := os.WriteFile(savePath, data, 0644); err != nil {
		return "", err
	}

	return fmt.Sprintf("/images/%s/%s", folder, filename), nil
}

func (fs *FileStore) saveToS3(data []byte, folder, filename, contentType string) (string, error) {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(fs.S3.Region),
		Endpoint: aws.String(fs.S3.Endpoint),
		Credentials: credentials.NewStaticCredentials(
			fs.S3.AccessKey, fs.S3.SecretKey, "",
		),
	}))
	client := s3.New(sess)

	filePath := fmt.Sprintf("%s/%s", folder, filename)
	_, err := client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(fs.S3.Bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("https://%s.%s/%s", fs.S3.Bucket, trimScheme(fs.S3.Endpoint), filePath), nil
}

func trimScheme(endpoint string) string {
	for _, prefix := range []string{"https://", "http://"} {
		if len(endpoint) > len(prefix) && endpoint[:len(prefix)] == prefix {
			return endpoint[len(prefix):]
		}
	}
	return endpoint
}
