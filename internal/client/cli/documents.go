package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Upload sends a verification document: "upload <path>". The backend issues
// a pre-signed URL and the file is PUT there directly.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: upload <path>")
		return nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(a.out, color.RedString("Cannot read file: %s", err.Error()))
		return nil
	}

	token := a.session.Snapshot().Token
	ticket, err := a.api.RequestDocumentUpload(ctx, token, filepath.Base(args[0]))
	if err != nil {
		fmt.Fprintln(a.out, color.RedString("Upload request failed: %s", err.Error()))
		return nil
	}

	if err := a.api.UploadDocument(ctx, ticket.UploadURL, data); err != nil {
		fmt.Fprintln(a.out, color.RedString("Upload failed: %s", err.Error()))
		return nil
	}

	fmt.Fprintln(a.out, color.GreenString("Document #%d uploaded, pending review.", ticket.DocumentID))

	// Pick up the new document in the cached profile.
	a.session.RefreshUser(ctx)
	return nil
}
