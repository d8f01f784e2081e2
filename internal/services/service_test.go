package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/omkarRanu3625/Blog-application/internal/database"
	"github.com/omkarRanu3625/Blog-application/internal/store/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return sqlite.New(db)
}

// sentMail records a single delivery made through fakeSender.
type sentMail struct {
	Recipient string
	Subject   string
	Body      string
}

// fakeSender records outbound mail, optionally failing every send.
type fakeSender struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeSender) Send(ctx context.Context, recipient, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{Recipient: recipient, Subject: subject, Body: body})
	return nil
}

func (f *fakeSender) deliveries() []sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMail(nil), f.sent...)
}
