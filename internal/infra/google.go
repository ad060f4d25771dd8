package infra

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// GoogleClientOptions picks credentials for Google REST clients: an API key,
// then an explicit service account file, then application default credentials.
func GoogleClientOptions(ctx context.Context, apiKey, credentialsFile string) ([]option.ClientOption, error) {
	if apiKey != "" {
		return []option.ClientOption{option.WithAPIKey(apiKey)}, nil
	}

	if credentialsFile != "" {
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read google credentials: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("parse google credentials: %w", err)
		}
		return []option.ClientOption{option.WithCredentials(creds)}, nil
	}

	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("find default google credentials: %w", err)
	}
	return []option.ClientOption{option.WithCredentials(creds)}, nil
}
