package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
)

// testMarshal and testUnmarshal are identity functions for string.
func testMarshal(s string) (string, error) {
	return s, nil
}

func testUnmarshal(str string) (string, error) {
	return str, nil
}

func newTestClient() (*Client[string], redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	client := NewClient[string]("localhost:6379", "", 0, "call_records", testMarshal, testUnmarshal)
	client.rdb = db
	return client, mock
}

func TestClient_Set(t *testing.T) {
	client, mock := newTestClient()

	ctx := context.Background()
	key := "testKey"
	value := "testValue"
	expiration := time.Minute

	mock.ExpectSet(key, value, expiration).SetVal("OK")

	err := client.Set(ctx, key, value, expiration)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %v", err)
	}
}

func TestClient_Find(t *testing.T) {
	client, mock := newTestClient()

	ctx := context.Background()
	expectedValue := `{"notes":"call after 5"}`

	mock.ExpectGet("call_records:abc").SetVal(expectedValue)

	val, err := client.Find(ctx, "abc")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if val != expectedValue {
		t.Errorf("expected %v, got %v", expectedValue, val)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %v", err)
	}
}

func TestClient_Insert(t *testing.T) {
	tests := []struct {
		name      string
		setErr    error
		rpushErr  error
		wantError bool
	}{
		{
			name: "stored and listed",
		},
		{
			name:      "set fails",
			setErr:    errors.New("set error"),
			wantError: true,
		},
		{
			name:      "rpush fails",
			rpushErr:  errors.New("rpush error"),
			wantError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			client, mock := newTestClient()

			if tc.setErr != nil {
				mock.ExpectSet("call_records:id-1", "doc", 0).SetErr(tc.setErr)
			} else {
				mock.ExpectSet("call_records:id-1", "doc", 0).SetVal("OK")
				if tc.rpushErr != nil {
					mock.ExpectRPush("call_records", "id-1").SetErr(tc.rpushErr)
				} else {
					mock.ExpectRPush("call_records", "id-1").SetVal(1)
				}
			}

			err := client.Insert(context.Background(), "id-1", "doc")
			if tc.wantError && err == nil {
				t.Fatalf("expected an error")
			}
			if !tc.wantError && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %v", err)
			}
		})
	}
}
