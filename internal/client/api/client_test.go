package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaleh/talentdesk/internal/common"
	"github.com/hsaleh/talentdesk/internal/wire"
)

func TestLogin_DecodesTokenPair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "hala", creds.Username)

		json.NewEncoder(w).Encode(map[string]string{"accessToken": "a1", "refreshToken": "r1"})
	}))
	defer srv.Close()

	pair, err := New(srv.URL).Login(context.Background(), "hala", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "a1", pair.AccessToken)
	assert.Equal(t, "r1", pair.RefreshToken)
}

func TestPushBatch_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := New(srv.URL).PushBatch(context.Background(), "token-1", wire.Batch{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-1", gotAuth)
}

func TestPushBatch_UnauthorizedIsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := New(srv.URL).PushBatch(context.Background(), "stale", wire.Batch{})
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestPushBatch_ServerErrorIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "failed to apply batch"})
	}))
	defer srv.Close()

	err := New(srv.URL).PushBatch(context.Background(), "token-1", wire.Batch{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply batch")
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, strings.Contains(r.URL.Path, "//"))
		json.NewEncoder(w).Encode(map[string]string{"accessToken": "a", "refreshToken": "r"})
	}))
	defer srv.Close()

	_, err := New(srv.URL + "/").Register(context.Background(), "u", "p")
	require.NoError(t, err)
}

func TestUploadPhoto_PutsToPresignedURL(t *testing.T) {
	var gotMethod, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
	}))
	defer srv.Close()

	err := New("http://unused").UploadPhoto(context.Background(), srv.URL+"/bucket/key?sig=x", strings.NewReader("jpegbytes"))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "jpegbytes", gotBody)
}
