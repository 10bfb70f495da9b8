package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultSessionTTL bounds how long an abandoned call's state survives.
const DefaultSessionTTL = 2 * time.Hour

var ErrMissingCallSID = errors.New("call session requires a call sid")

// CallSession is the live state of one voice call, keyed by the
// telephony provider's call SID. CustomerID and AccountID stay empty
// until the caller has been verified.
type CallSession struct {
	CallSID     string `json:"call_sid"`
	Stage       string `json:"stage"`
	Intent      string `json:"intent"`
	SessionID   string `json:"session_id"`
	CustomerID  string `json:"customer_id"`
	AccountID   string `json:"account_id"`
	PhoneNumber string `json:"phone_number"`
	TaskSID     string `json:"task_sid"`
}

// SessionStore persists call sessions in Redis with a TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Save writes the session and resets its TTL.
func (s *SessionStore) Save(ctx context.Context, session *CallSession) error {
	if session == nil || session.CallSID == "" {
		return ErrMissingCallSID
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal call session: %w", err)
	}
	return s.client.Set(ctx, sessionKey(session.CallSID), data, s.ttl).Err()
}

// Get returns the session for a call SID. A miss is (nil, false, nil),
// not an error; expired sessions look the same as ones that never were.
func (s *SessionStore) Get(ctx context.Context, callSID string) (*CallSession, bool, error) {
	data, err := s.client.Get(ctx, sessionKey(callSID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get call session: %w", err)
	}

	var session CallSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal call session: %w", err)
	}
	return &session, true, nil
}

// Touch extends a live session's TTL without rewriting it. Returns false
// when the session no longer exists.
func (s *SessionStore) Touch(ctx context.Context, callSID string) (bool, error) {
	ok, err := s.client.Expire(ctx, sessionKey(callSID), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to touch call session: %w", err)
	}
	return ok, nil
}

// Delete drops the session once the call wraps up.
func (s *SessionStore) Delete(ctx context.Context, callSID string) error {
	return s.client.Del(ctx, sessionKey(callSID)).Err()
}

func (s *SessionStore) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *SessionStore) Close() error {
	return s.client.Close()
}

func sessionKey(callSID string) string {
	return fmt.Sprintf("call_session:%s", callSID)
}
