package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpsertMergesPartialUpdates(t *testing.T) {
	engine, _ := setupAPITest(t)
	token := registerUser(t, engine, "Jane", "jane@example.com")

	w := doJSON(t, engine, http.MethodPost, "/api/profile", token,
		`{"company":"Y","status":"A","skills":"Go, SQL"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, engine, http.MethodPost, "/api/profile", token, `{"status":"X"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Y", profile["company"])
	assert.Equal(t, "X", profile["status"])
	assert.Equal(t, []interface{}{"Go", "SQL"}, profile["skills"])
}

func TestProfileCreateRequiresStatusAndSkills(t *testing.T) {
	engine, _ := setupAPITest(t)
	token := registerUser(t, engine, "Jane", "jane@example.com")

	w := doJSON(t, engine, http.MethodPost, "/api/profile", token, `{"company":"Acme"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "status is required")
	assert.Contains(t, w.Body.String(), "skills is required")
}

func TestProfileMeWithoutProfile(t *testing.T) {
	engine, _ := setupAPITest(t)
	token := registerUser(t, engine, "Jane", "jane@example.com")

	w := doJSON(t, engine, http.MethodGet, "/api/profile/me", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "there is no profile for this user")
}

func TestProfileListIsPublic(t *testing.T) {
	engine, _ := setupAPITest(t)
	token := registerUser(t, engine, "Jane", "jane@example.com")

	w := doJSON(t, engine, http.MethodPost, "/api/profile", token,
		`{"status":"Developer","skills":"Go"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// No token on the list read.
	list := doJSON(t, engine, http.MethodGet, "/api/profile", "", "")
	require.Equal(t, http.StatusOK, list.Code)

	var profiles []map[string]interface{}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &profiles))
	require.Len(t, profiles, 1)

	// Owner name and avatar ride along for the public read.
	user, ok := profiles[0]["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Jane", user["name"])
	assert.NotEmpty(t, user["avatar"])
}

func TestProfileGetByUserID(t *testing.T) {
	engine, _ := setupAPITest(t)
	token := registerUser(t, engine, "Jane", "jane@example.com")

	w := doJSON(t, engine, http.MethodPost, "/api/profile", token,
		`{"status":"Developer","skills":"Go"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	userID := created["user_id"].(string)

	got := doJSON(t, engine, http.MethodGet, "/api/profile/user/"+userID, "", "")
	assert.Equal(t, http.StatusOK, got.Code)

	missing := doJSON(t, engine, http.MethodGet, "/api/profile/user/not-a-uuid", "", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestExperienceFlow(t *testing.T) {
	engine, _ := setupAPITest(t)
	token := registerUser(t, engine, "Jane", "jane@example.com")

	w := doJSON(t, engine, http.MethodPost, "/api/profile", token,
		`{"status":"Developer","skills":"Go"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Missing required fields.
	w = doJSON(t, engine, http.MethodPut, "/api/profile/experience", token, `{"location":"Remote"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title is required")
	assert.Contains(t, w.Body.String(), "company is required")
	assert.Contains(t, w.Body.String(), "from date is required")

	w = doJSON(t, engine, http.MethodPut, "/api/profile/experience", token,
		`{"title":"Senior Dev","company":"Acme","from":"2021-06-01T00:00:00Z","current":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile struct {
		Experience []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"experience"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	require.Len(t, profile.Experience, 1)

	w = doJSON(t, engine, http.MethodDelete, "/api/profile/experience/"+profile.Experience[0].ID, token, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Empty(t, profile.Experience)

	// Removing again reports not found instead of silently succeeding.
	w = doJSON(t, engine, http.MethodDelete, "/api/profile/experience/"+uuidString(), token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEducationFlow(t *testing.T) {
	engine, _ := setupAPITest(t)
	token := registerUser(t, engine, "Jane", "jane@example.com")

	w := doJSON(t, engine, http.MethodPost, "/api/profile", token,
		`{"status":"Student","skills":"Go"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPut, "/api/profile/education", token,
		`{"school":"MIT","degree":"BSc","fieldofstudy":"CS","from":"2014-09-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile struct {
		Education []struct {
			ID     string `json:"id"`
			School string `json:"school"`
		} `json:"education"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	require.Len(t, profile.Education, 1)
	assert.Equal(t, "MIT", profile.Education[0].School)
}

func TestDeleteProfileRemovesAccount(t *testing.T) {
	engine, _ := setupAPITest(t)
	token := registerUser(t, engine, "Jane", "jane@example.com")

	w := doJSON(t, engine, http.MethodPost, "/api/profile", token,
		`{"status":"Developer","skills":"Go"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/profile", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	// The token still verifies but the account is gone.
	me := doJSON(t, engine, http.MethodGet, "/api/auth", token, "")
	assert.Equal(t, http.StatusNotFound, me.Code)
}

func TestAvatarUploadDisabledWithoutS3(t *testing.T) {
	engine, _ := setupAPITest(t)
	token := registerUser(t, engine, "Jane", "jane@example.com")

	w := doJSON(t, engine, http.MethodPut, "/api/profile/avatar", token, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
