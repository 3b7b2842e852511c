package firebase

import (
	"context"
	"fmt"

	firebaseSDK "firebase.google.com/go"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase App the Firestore client is taken from. An empty
// credentialsFile falls back to application default credentials, and an empty projectID to
// the project named by those credentials.
func NewApp(ctx context.Context, credentialsFile, projectID string) (*firebaseSDK.App, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	var conf *firebaseSDK.Config
	if projectID != "" {
		conf = &firebaseSDK.Config{ProjectID: projectID}
	}

	app, err := firebaseSDK.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %v", err)
	}
	return app, nil
}
