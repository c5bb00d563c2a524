package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/skill-swap/admin-go/config"
	"github.com/skill-swap/admin-go/models"
	"github.com/skill-swap/admin-go/moderation"
	"github.com/skill-swap/admin-go/routes"
)

func setupTestServer(t *testing.T) (*gin.Engine, *moderation.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:              "8080",
		AdminEmail:        "admin@skillswap.com",
		AdminName:         "System Administrator",
		AdminPasswordHash: hash,
	}

	engine := moderation.NewEngine()
	moderation.SeedDemoData(engine)

	r := gin.New()
	routes.SetupRoutes(r, engine, cfg)
	return r, engine
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", "", gin.H{
		"email":    "admin@skillswap.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", "", gin.H{
		"email":    "admin@skillswap.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/login", "", gin.H{
		"email":    "intruder@example.com",
		"password": "admin123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/users", "not a token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetStats(t *testing.T) {
	r, _ := setupTestServer(t)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/admin/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool         `json:"success"`
		Data    models.Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 4, resp.Data.TotalUsers)
	assert.Equal(t, 2, resp.Data.PendingSkills)
	assert.Equal(t, 3, resp.Data.ActiveReports)
	assert.Equal(t, 2, resp.Data.UnreadMessages)
}

func TestApproveSkillMovesPendingCount(t *testing.T) {
	r, engine := setupTestServer(t)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPatch, "/api/admin/skills/s-2", token, gin.H{"status": "active"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stats := engine.Stats()
	assert.Equal(t, 1, stats.PendingSkills)
	assert.Equal(t, 4, stats.TotalSkills)
}

func TestInvalidSkillTransitionIsRejected(t *testing.T) {
	r, _ := setupTestServer(t)
	token := adminToken(t, r)

	// s-1 is active in the seed; active skills cannot go back to pending.
	w := doJSON(t, r, http.MethodPatch, "/api/admin/skills/s-1", token, gin.H{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMissingUserReturns404(t *testing.T) {
	r, engine := setupTestServer(t)
	token := adminToken(t, r)

	before := engine.Stats()
	w := doJSON(t, r, http.MethodDelete, "/api/admin/users/ghost", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before.TotalUsers, engine.Stats().TotalUsers)
}

func TestResolveReport(t *testing.T) {
	r, engine := setupTestServer(t)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/reports/r-1/resolve", token, gin.H{"action": "reject"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 2, engine.Stats().ActiveReports)

	// Already resolved, so the second attempt cannot find it.
	w = doJSON(t, r, http.MethodPost, "/api/admin/reports/r-1/resolve", token, gin.H{"action": "approve"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSecondReplyConflicts(t *testing.T) {
	r, engine := setupTestServer(t)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/messages/m-1/reply", token, gin.H{"content": "Thanks for reaching out"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	msg, err := engine.GetMessage("m-1")
	require.NoError(t, err)
	require.NotNil(t, msg.Reply)
	assert.Equal(t, "System Administrator", msg.Reply.AdminName)
	assert.Equal(t, models.MessageStatusRead, msg.Status)

	w = doJSON(t, r, http.MethodPost, "/api/admin/messages/m-1/reply", token, gin.H{"content": "Again"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestContactFormCreatesUnreadMessage(t *testing.T) {
	r, engine := setupTestServer(t)

	before := engine.Stats().UnreadMessages
	w := doJSON(t, r, http.MethodPost, "/api/contact", "", gin.H{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "How do I join?",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, before+1, engine.Stats().UnreadMessages)
}

func TestFileReportAgainstMissingTarget(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/reports", "", gin.H{
		"type":     "skill",
		"targetId": "ghost",
		"reason":   "broken",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSettings(t *testing.T) {
	r, _ := setupTestServer(t)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/admin/settings", token, gin.H{
		"maintenanceMode":       true,
		"allowNewRegistrations": false,
		"skillApprovalRequired": true,
		"maxSkillsPerUser":      5,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/admin/settings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.SystemSettings `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.MaintenanceMode)
	assert.False(t, resp.Data.AllowNewRegistrations)
	assert.Equal(t, 5, resp.Data.MaxSkillsPerUser)

	w = doJSON(t, r, http.MethodPut, "/api/admin/settings", token, gin.H{"maxSkillsPerUser": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
