package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/NetanelBaruch/Moddo/config"
)

// FirestoreClient returns the Firestore client from an initialized
// Firebase app.
func FirestoreClient(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}
	return client, nil
}

// StorageClient returns a Cloud Storage client using the same
// credentials as the Firebase app.
func StorageClient(ctx context.Context, cfg *config.FirebaseConfig) (*storage.Client, error) {
	opts := []option.ClientOption{}
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to get Storage client: %w", err)
	}
	return client, nil
}
