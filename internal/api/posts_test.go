package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPost(t *testing.T, engine *gin.Engine, token, text string) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/posts", token, `{"text":"`+text+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var post struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	require.NotEmpty(t, post.ID)
	return post.ID
}

func TestCreateAndListPosts(t *testing.T) {
	engine, _ := setupAPITest(t)
	token := registerUser(t, engine, "Jane", "jane@example.com")

	w := doJSON(t, engine, http.MethodPost, "/api/posts", token, `{"text":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "text is required")

	createPost(t, engine, token, "first post")
	createPost(t, engine, token, "second post")

	list := doJSON(t, engine, http.MethodGet, "/api/posts", token, "")
	require.Equal(t, http.StatusOK, list.Code)

	var posts []struct {
		Text string `json:"text"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "second post", posts[0].Text)
	assert.Equal(t, "Jane", posts[0].Name)
}

func TestGetPostNotFound(t *testing.T) {
	engine, _ := setupAPITest(t)
	token := registerUser(t, engine, "Jane", "jane@example.com")

	w := doJSON(t, engine, http.MethodGet, "/api/posts/not-a-uuid", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "post not found")

	w = doJSON(t, engine, http.MethodGet, "/api/posts/"+uuidString(), token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePostOwnership(t *testing.T) {
	engine, _ := setupAPITest(t)
	jane := registerUser(t, engine, "Jane", "jane@example.com")
	bob := registerUser(t, engine, "Bob", "bob@example.com")

	postID := createPost(t, engine, jane, "jane's post")

	w := doJSON(t, engine, http.MethodDelete, "/api/posts/"+postID, bob, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/posts/"+postID, jane, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/posts/"+postID, jane, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikeUnlikeFlow(t *testing.T) {
	engine, _ := setupAPITest(t)
	jane := registerUser(t, engine, "Jane", "jane@example.com")
	bob := registerUser(t, engine, "Bob", "bob@example.com")

	postID := createPost(t, engine, jane, "likeable")

	w := doJSON(t, engine, http.MethodPut, "/api/posts/like/"+postID, bob, "")
	require.Equal(t, http.StatusOK, w.Code)

	var likes []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &likes))
	assert.Len(t, likes, 1)

	w = doJSON(t, engine, http.MethodPut, "/api/posts/like/"+postID, bob, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already liked")

	w = doJSON(t, engine, http.MethodPut, "/api/posts/unlike/"+postID, bob, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &likes))
	assert.Empty(t, likes)

	w = doJSON(t, engine, http.MethodPut, "/api/posts/unlike/"+postID, bob, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not yet been liked")
}

func TestCommentFlow(t *testing.T) {
	engine, _ := setupAPITest(t)
	jane := registerUser(t, engine, "Jane", "jane@example.com")
	bob := registerUser(t, engine, "Bob", "bob@example.com")

	postID := createPost(t, engine, jane, "discuss")

	w := doJSON(t, engine, http.MethodPost, "/api/posts/comment/"+postID, bob, `{"text":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/posts/comment/"+postID, bob, `{"text":"great post"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var comments []struct {
		ID   string `json:"id"`
		Text string `json:"text"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "great post", comments[0].Text)
	assert.Equal(t, "Bob", comments[0].Name)

	// Jane cannot delete Bob's comment.
	w = doJSON(t, engine, http.MethodDelete, "/api/posts/comment/"+postID+"/"+comments[0].ID, jane, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/posts/comment/"+postID+"/"+comments[0].ID, bob, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	assert.Empty(t, comments)

	w = doJSON(t, engine, http.MethodDelete, "/api/posts/comment/"+postID+"/"+uuidString(), bob, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "comment does not exist")
}
