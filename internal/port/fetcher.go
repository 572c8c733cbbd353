package port

import "context"

// FetchedDocument is a downloaded document plus its reported content type.
type FetchedDocument struct {
	Bytes       []byte
	ContentType string
}

// DocumentFetcher downloads a document from a remote URL.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (*FetchedDocument, error)
}
