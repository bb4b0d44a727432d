package catalyst_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
)

func TestSubmitJob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/jobs", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]interface{}
		mustDecode(r, &body)
		assert.Equal(t, "net_123", body["network_id"])
		assert.Equal(t, float64(1000), body["timesteps"])

		// Optional lists are always present, empty rather than null.
		stimuli, ok := body["stimuli"].([]interface{})
		require.True(t, ok)
		assert.Empty(t, stimuli)
		rewards, ok := body["rewards"].([]interface{})
		require.True(t, ok)
		assert.Empty(t, rewards)

		// Learning is omitted entirely when unset.
		_, present := body["learning"]
		assert.False(t, present)

		mustEncode(w, map[string]interface{}{
			"job_id": "job_456",
			"status": "queued",
		})
	}))
	defer server.Close()

	client := catalyst.NewClient(fakeAPIKey, catalyst.WithBaseURL(server.URL))
	job, err := client.SubmitJob(context.Background(), &catalyst.JobRequest{
		NetworkID: "net_123",
		Timesteps: 1000,
	})
	require.NoError(t, err)

	assert.Equal(t, "job_456", job.JobID)
	assert.Equal(t, catalyst.JobStatusQueued, job.Status)
}

func TestSubmitJob_WithLearning(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		mustDecode(r, &body)

		learning, ok := body["learning"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "stdp", learning["rule"])

		stimuli := body["stimuli"].([]interface{})
		require.Len(t, stimuli, 1)
		stim := stimuli[0].(map[string]interface{})
		assert.Equal(t, "input", stim["population"])
		assert.Equal(t, float64(5000), stim["current"])

		mustEncode(w, map[string]interface{}{"job_id": "job_457", "status": "queued"})
	}))
	defer server.Close()

	client := catalyst.NewClient(fakeAPIKey, catalyst.WithBaseURL(server.URL))
	_, err := client.SubmitJob(context.Background(), &catalyst.JobRequest{
		NetworkID: "net_123",
		Timesteps: 1000,
		Stimuli:   []catalyst.Stimulus{{Population: "input", Current: 5000}},
		Learning:  &catalyst.LearningConfig{Rule: "stdp"},
	})
	require.NoError(t, err)
}

func TestGetJob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/jobs/job_456", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		mustEncode(w, map[string]interface{}{
			"status":          "completed",
			"result":          map[string]interface{}{"total_spikes": 42},
			"compute_seconds": 1.5,
		})
	}))
	defer server.Close()

	client := catalyst.NewClient(fakeAPIKey, catalyst.WithBaseURL(server.URL))
	job, err := client.GetJob(context.Background(), "job_456")
	require.NoError(t, err)

	assert.Equal(t, catalyst.JobStatusCompleted, job.Status)
	require.NotNil(t, job.Result)
	assert.Equal(t, 42, job.Result.TotalSpikes)
	assert.Equal(t, 1.5, job.ComputeSeconds)
}

func TestGetSpikes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/jobs/job_456/spikes", r.URL.Path)

		mustEncode(w, map[string]interface{}{
			"spike_trains": map[string]interface{}{
				"input": map[string]interface{}{
					"0": []float64{10, 20},
					"1": []float64{15},
				},
			},
		})
	}))
	defer server.Close()

	client := catalyst.NewClient(fakeAPIKey, catalyst.WithBaseURL(server.URL))
	spikes, err := client.GetSpikes(context.Background(), "job_456")
	require.NoError(t, err)

	require.Contains(t, spikes.SpikeTrains, "input")
	assert.Equal(t, []float64{10, 20}, spikes.SpikeTrains["input"]["0"])
	assert.Equal(t, []float64{15}, spikes.SpikeTrains["input"]["1"])
}

// simulateServer serves POST /v1/jobs with a fixed submission response and
// answers successive GET polls from the statuses list, repeating the last
// entry once exhausted.
func simulateServer(t *testing.T, jobID string, statuses []map[string]interface{}) *httptest.Server {
	t.Helper()
	polls := 0
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/jobs":
			mustEncode(w, map[string]interface{}{"job_id": jobID, "status": "queued"})
		case r.Method == http.MethodGet && r.URL.Path == "/v1/jobs/"+jobID:
			i := polls
			if i >= len(statuses) {
				i = len(statuses) - 1
			}
			polls++
			mustEncode(w, statuses[i])
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestSimulate_Completes(t *testing.T) {
	server := simulateServer(t, "job_789", []map[string]interface{}{
		{"status": "running"},
		{"status": "completed", "result": map[string]interface{}{"total_spikes": 100}},
	})
	defer server.Close()

	client := catalyst.NewClient(fakeAPIKey, catalyst.WithBaseURL(server.URL))
	job, err := client.Simulate(context.Background(),
		&catalyst.JobRequest{NetworkID: "net_123", Timesteps: 500},
		catalyst.WithPollInterval(10*time.Millisecond),
	)
	require.NoError(t, err)

	// The returned job is the final poll response, not the submission echo.
	assert.Equal(t, catalyst.JobStatusCompleted, job.Status)
	require.NotNil(t, job.Result)
	assert.Equal(t, 100, job.Result.TotalSpikes)
}

func TestSimulate_ImmediateCompletion(t *testing.T) {
	server := simulateServer(t, "job_fast", []map[string]interface{}{
		{"status": "completed", "result": map[string]interface{}{"total_spikes": 7}},
	})
	defer server.Close()

	client := catalyst.NewClient(fakeAPIKey, catalyst.WithBaseURL(server.URL))
	job, err := client.Simulate(context.Background(),
		&catalyst.JobRequest{NetworkID: "net_123", Timesteps: 10},
		catalyst.WithPollInterval(10*time.Millisecond),
	)
	require.NoError(t, err)
	assert.Equal(t, 7, job.Result.TotalSpikes)
}

func TestSimulate_JobFailed(t *testing.T) {
	server := simulateServer(t, "job_fail", []map[string]interface{}{
		{"status": "failed", "error_message": "Out of memory"},
	})
	defer server.Close()

	client := catalyst.NewClient(fakeAPIKey, catalyst.WithBaseURL(server.URL))
	_, err := client.Simulate(context.Background(),
		&catalyst.JobRequest{NetworkID: "net_123", Timesteps: 500},
		catalyst.WithPollInterval(10*time.Millisecond),
	)
	require.Error(t, err)

	var apiErr *catalyst.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "Out of memory")
}

func TestSimulate_JobFailedNoMessage(t *testing.T) {
	server := simulateServer(t, "job_fail", []map[string]interface{}{
		{"status": "failed"},
	})
	defer server.Close()

	client := catalyst.NewClient(fakeAPIKey, catalyst.WithBaseURL(server.URL))
	_, err := client.Simulate(context.Background(),
		&catalyst.JobRequest{NetworkID: "net_123", Timesteps: 500},
		catalyst.WithPollInterval(10*time.Millisecond),
	)
	require.Error(t, err)

	var apiErr *catalyst.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Job failed", apiErr.Detail)
}

// TestSimulate_Timeout keeps the job in a non-terminal state past the
// maximum wait and expects a *TimeoutError naming the job.
func TestSimulate_Timeout(t *testing.T) {
	server := simulateServer(t, "job_slow", []map[string]interface{}{
		{"status": "running"},
	})
	defer server.Close()

	client := catalyst.NewClient(fakeAPIKey, catalyst.WithBaseURL(server.URL))
	_, err := client.Simulate(context.Background(),
		&catalyst.JobRequest{NetworkID: "net_123", Timesteps: 500},
		catalyst.WithPollInterval(10*time.Millisecond),
		catalyst.WithMaxWait(50*time.Millisecond),
	)
	require.Error(t, err)

	var timeoutErr *catalyst.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, "job_slow", timeoutErr.JobID)
	assert.Equal(t, 50*time.Millisecond, timeoutErr.MaxWait)
	assert.Contains(t, err.Error(), "job_slow")
}

// TestSimulate_UnknownStatusKeepsPolling verifies that a status this SDK
// does not recognize counts as still pending.
func TestSimulate_UnknownStatusKeepsPolling(t *testing.T) {
	server := simulateServer(t, "job_odd", []map[string]interface{}{
		{"status": "provisioning"},
		{"status": "completed", "result": map[string]interface{}{"total_spikes": 3}},
	})
	defer server.Close()

	client := catalyst.NewClient(fakeAPIKey, catalyst.WithBaseURL(server.URL))
	job, err := client.Simulate(context.Background(),
		&catalyst.JobRequest{NetworkID: "net_123", Timesteps: 500},
		catalyst.WithPollInterval(10*time.Millisecond),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, job.Result.TotalSpikes)
}

func TestSimulate_ContextCancelled(t *testing.T) {
	server := simulateServer(t, "job_slow", []map[string]interface{}{
		{"status": "running"},
	})
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	client := catalyst.NewClient(fakeAPIKey, catalyst.WithBaseURL(server.URL))
	_, err := client.Simulate(ctx,
		&catalyst.JobRequest{NetworkID: "net_123", Timesteps: 500},
		catalyst.WithPollInterval(time.Second),
	)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSimulate_SubmitError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		mustEncode(w, map[string]interface{}{"detail": "Daily job limit reached"})
	}))
	defer server.Close()

	client := catalyst.NewClient(fakeAPIKey, catalyst.WithBaseURL(server.URL))
	_, err := client.Simulate(context.Background(),
		&catalyst.JobRequest{NetworkID: "net_123", Timesteps: 500},
	)
	require.Error(t, err)

	var apiErr *catalyst.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
}
