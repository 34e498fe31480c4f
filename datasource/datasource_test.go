package datasource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"gemrock-store/apiclient"
	"gemrock-store/config"
	"gemrock-store/models"
)

func newAPI(t *testing.T, handler http.HandlerFunc) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL, time.Second, nil)
}

func writeData(w http.ResponseWriter, data any) {
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func TestStubSourceSampleData(t *testing.T) {
	ctx := context.Background()
	stub := NewStubSource()

	jobs, err := stub.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "Senior Tax Consultant", jobs[0].Title)
	assert.Equal(t, "pending", jobs[2].Status)

	users, err := stub.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 4)
	assert.Equal(t, "emma@gemrock.tax", users[3].Email)

	reports, err := stub.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "draft", reports[2].Status)
}

func TestStubSourceWrites(t *testing.T) {
	ctx := context.Background()
	stub := NewStubSource()

	job, err := stub.CreateJob(ctx, &models.CreateJobRequest{Title: "Gem Appraiser", Company: "Gemrock Global"})
	require.NoError(t, err)
	assert.Equal(t, "open", job.Status)
	assert.NotEmpty(t, job.ID)

	require.NoError(t, stub.DeleteJob(ctx, "1"))
	assert.ErrorIs(t, stub.DeleteJob(ctx, "1"), ErrNotFound)

	jobs, _ := stub.ListJobs(ctx)
	assert.Len(t, jobs, 3)
	assert.Equal(t, "Gem Appraiser", jobs[2].Title)

	user, err := stub.RegisterUser(ctx, &models.RegisterUserRequest{Name: "Ada", Email: "ada@gemrock.tax", Password: "pw", Role: "superadmin"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)

	_, err = stub.CreateJob(ctx, &models.CreateJobRequest{Title: " "})
	assert.Error(t, err)
}

func TestLiveSource(t *testing.T) {
	var deleted string
	client := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/jobs":
			writeData(w, []models.Job{{ID: "a", Title: "Remote Job"}})
		case r.Method == http.MethodPost && r.URL.Path == "/auth/register":
			var req models.RegisterUserRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			writeData(w, models.DashboardUser{ID: "u1", Email: req.Email, Role: req.Role})
		case r.Method == http.MethodDelete && r.URL.Path == "/jobs/a":
			deleted = "a"
			writeData(w, nil)
		default:
			http.NotFound(w, r)
		}
	})
	live := NewLiveSource(client)
	ctx := context.Background()

	jobs, err := live.ListJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Remote Job", jobs[0].Title)

	user, err := live.RegisterUser(ctx, &models.RegisterUserRequest{Email: "x@y.z", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	require.NoError(t, live.DeleteJob(ctx, "a"))
	assert.Equal(t, "a", deleted)

	_, err = live.ListReports(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLiveSourceUnavailable(t *testing.T) {
	client := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := NewLiveSource(client).ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFallbackSourceSubstitutesListsAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	client := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	source := NewFallbackSource(NewLiveSource(client), NewStubSource(), zap.New(core).Sugar())
	ctx := context.Background()

	users, err := source.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	reports, err := source.ListReports(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 3)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "users", logs.All()[0].ContextMap()["resource"])

	_, err = source.CreateJob(ctx, &models.CreateJobRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrUnavailable, "writes are never substituted")
	assert.Equal(t, "live-fallback", source.Name())
}

func TestFallbackSourcePrefersPrimary(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	client := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []models.Job{})
	})
	source := NewFallbackSource(NewLiveSource(client), NewStubSource(), zap.New(core).Sugar())

	jobs, err := source.ListJobs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.Zero(t, logs.Len())
}

func TestNew(t *testing.T) {
	client := apiclient.New("http://localhost:5000/api/v1", time.Second, nil)

	stub, err := New(config.DataSourceStub, client, nil)
	require.NoError(t, err)
	assert.Equal(t, "stub", stub.Name())

	live, err := New(config.DataSourceLive, client, nil)
	require.NoError(t, err)
	assert.Equal(t, "live", live.Name())

	fallback, err := New(config.DataSourceLiveFallback, client, nil)
	require.NoError(t, err)
	assert.IsType(t, &FallbackSource{}, fallback)

	_, err = New("mock", client, nil)
	assert.Error(t, err)
}
