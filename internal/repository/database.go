package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var (
	ErrNoOwner            = errors.New("no owner registered")
	ErrOwnerRecordCorrupt = errors.New("owner record is corrupt")
)

// Store is the bot's only durable state: the single owner record and the
// registry of private chats used for broadcast fan-out.
type Store struct {
	db *sql.DB
	// Serializes the owner check-and-create so two near-simultaneous
	// /start calls get exactly one winner.
	ownerMu sync.Mutex
}

func Open(databaseFile string) (*Store, error) {
	db, err := sql.Open("sqlite3", databaseFile)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS owner (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			user_id TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS private_chats (
			chat_id TEXT NOT NULL,
			platform TEXT NOT NULL,
			last_seen DATETIME NOT NULL,
			PRIMARY KEY (chat_id, platform)
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureOwner registers candidateID as the bot owner if no owner exists
// yet. First writer wins, every later call leaves the record untouched.
func (s *Store) EnsureOwner(candidateID string) (bool, error) {
	s.ownerMu.Lock()
	defer s.ownerMu.Unlock()

	res, err := s.db.Exec(`
		INSERT INTO owner (id, user_id) VALUES (1, ?)
		ON CONFLICT(id) DO NOTHING`,
		candidateID)
	if err != nil {
		return false, fmt.Errorf("storing owner: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// Owner returns the registered owner id.
func (s *Store) Owner() (string, error) {
	var userID string
	err := s.db.QueryRow(`SELECT user_id FROM owner WHERE id = 1`).Scan(&userID)
	if err == sql.ErrNoRows {
		return "", ErrNoOwner
	} else if err != nil {
		return "", fmt.Errorf("reading owner: %w", err)
	}
	if strings.TrimSpace(userID) == "" {
		return "", ErrOwnerRecordCorrupt
	}
	return userID, nil
}

// IsOwner never errors towards the dispatcher, a missing or unreadable
// record simply means "not the owner".
func (s *Store) IsOwner(userID string) bool {
	owner, err := s.Owner()
	if err != nil {
		return false
	}
	return owner == userID
}

// RememberChat records a private conversation so broadcasts can reach it
// later. Upserts, so repeat messages just refresh the timestamp.
func (s *Store) RememberChat(chatID, platform string) error {
	_, err := s.db.Exec(`
		INSERT INTO private_chats (chat_id, platform, last_seen) VALUES (?, ?, ?)
		ON CONFLICT(chat_id, platform) DO UPDATE SET last_seen = excluded.last_seen`,
		chatID, platform, time.Now())
	if err != nil {
		return fmt.Errorf("remembering chat: %w", err)
	}
	return nil
}

// PrivateChats lists known private conversations for a platform, oldest
// registration first.
func (s *Store) PrivateChats(platform string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT chat_id FROM private_chats WHERE platform = ? ORDER BY rowid`,
		platform)
	if err != nil {
		return nil, fmt.Errorf("listing chats: %w", err)
	}
	defer rows.Close()

	var chats []string
	for rows.Next() {
		var chatID string
		if err := rows.Scan(&chatID); err != nil {
			return nil, err
		}
		chats = append(chats, chatID)
	}
	return chats, rows.Err()
}
