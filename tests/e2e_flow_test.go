package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldenPath(t *testing.T) {
	app, _ := SetupTestApp(t)

	// Helper for requests
	request := func(method, path string, body interface{}) *http.Response {
		var bodyReader io.Reader
		if body != nil {
			jsonBytes, _ := json.Marshal(body)
			bodyReader = bytes.NewReader(jsonBytes)
		}
		req, _ := http.NewRequest(method, path, bodyReader)
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	decode := func(resp *http.Response, dest interface{}) {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
	}

	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	year := time.Now().Year()

	// ==========================================
	// STEP 1: Empty state: everything degrades to zero, never errors
	// ==========================================
	resp := request("GET", "/v1/workouts", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var empty []map[string]interface{}
	decode(resp, &empty)
	assert.Empty(t, empty)

	resp = request("GET", fmt.Sprintf("/v1/overview?year=%d", year), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var overviewResp struct {
		Success bool `json:"success"`
		Data    struct {
			Total    float64 `json:"total"`
			GoalSet  bool    `json:"goal_set"`
			Progress float64 `json:"progress"`
		} `json:"data"`
	}
	decode(resp, &overviewResp)
	assert.True(t, overviewResp.Success)
	assert.Zero(t, overviewResp.Data.Total)
	assert.False(t, overviewResp.Data.GoalSet)

	// ==========================================
	// STEP 2: Log workouts on consecutive days
	// ==========================================
	draft := func(date string, weight float64) map[string]interface{} {
		return map[string]interface{}{
			"name": "Morning Lift",
			"date": date,
			"exercises": []map[string]interface{}{
				{"name": "squat", "sets": 3, "reps": 10, "weight": weight},
			},
		}
	}

	resp = request("POST", "/v1/workouts", draft(yesterday, 100))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var first map[string]interface{}
	decode(resp, &first)
	assert.Equal(t, "Squat", first["exercises"].([]interface{})[0].(map[string]interface{})["name"])
	assert.Equal(t, 3000.0, first["totalWeight"])

	resp = request("POST", "/v1/workouts", draft(today, 135))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var second map[string]interface{}
	decode(resp, &second)
	assert.Equal(t, 4050.0, second["totalWeight"])

	// Invalid draft is rejected at the boundary
	bad := draft(today, 135)
	bad["name"] = ""
	resp = request("POST", "/v1/workouts", bad)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// ==========================================
	// STEP 3: Goal and progress ring
	// ==========================================
	resp = request("PUT", fmt.Sprintf("/v1/goals/%d", year), map[string]interface{}{"amount": -5})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = request("PUT", fmt.Sprintf("/v1/goals/%d", year), map[string]interface{}{"amount": 10000})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request("GET", fmt.Sprintf("/v1/overview?year=%d", year), nil)
	decode(resp, &overviewResp)
	assert.Equal(t, 7050.0, overviewResp.Data.Total)
	assert.True(t, overviewResp.Data.GoalSet)
	assert.InDelta(t, 70.5, overviewResp.Data.Progress, 0.001)

	// ==========================================
	// STEP 4: Insights: streak, leaderboard, buckets
	// ==========================================
	resp = request("GET", "/v1/insights?view=daily", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var insightsResp struct {
		Success bool `json:"success"`
		Data    struct {
			Streak       int `json:"streak"`
			TopExercises []struct {
				Name  string  `json:"name"`
				Total float64 `json:"total"`
			} `json:"top_exercises"`
			Series []struct {
				Label string  `json:"label"`
				Value float64 `json:"value"`
			} `json:"series"`
		} `json:"data"`
	}
	decode(resp, &insightsResp)
	assert.Equal(t, 2, insightsResp.Data.Streak)
	require.NotEmpty(t, insightsResp.Data.TopExercises)
	assert.Equal(t, "Squat", insightsResp.Data.TopExercises[0].Name)
	assert.Equal(t, 7050.0, insightsResp.Data.TopExercises[0].Total)
	require.Len(t, insightsResp.Data.Series, 7)

	resp = request("GET", "/v1/insights?view=sideways", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// ==========================================
	// STEP 5: Suggestions and comparison
	// ==========================================
	resp = request("GET", "/v1/exercises/suggestions?q=sq", nil)
	var suggestions []string
	decode(resp, &suggestions)
	assert.Equal(t, []string{"Squat"}, suggestions)

	resp = request("GET", "/v1/exercises/suggestions?q=", nil)
	decode(resp, &suggestions)
	assert.Empty(t, suggestions)

	resp = request("GET", "/v1/exercises/compare?first=squat", nil)
	var compareResp struct {
		Data struct {
			FirstTotal float64 `json:"first_total"`
		} `json:"data"`
	}
	decode(resp, &compareResp)
	assert.Equal(t, 7050.0, compareResp.Data.FirstTotal)

	// ==========================================
	// STEP 6: Edit preserves identity, delete is idempotent
	// ==========================================
	secondID := int64(second["id"].(float64))
	edited := draft(today, 155)
	resp = request("PUT", fmt.Sprintf("/v1/workouts/%d", secondID), edited)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated map[string]interface{}
	decode(resp, &updated)
	assert.Equal(t, float64(secondID), updated["id"])
	assert.Equal(t, 4650.0, updated["totalWeight"])

	resp = request("DELETE", fmt.Sprintf("/v1/workouts/%d", secondID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// deleting a missing workout is a silent no-op
	resp = request("DELETE", fmt.Sprintf("/v1/workouts/%d", secondID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request("GET", "/v1/workouts", nil)
	var remaining []map[string]interface{}
	decode(resp, &remaining)
	require.Len(t, remaining, 1)
	assert.Equal(t, yesterday, remaining[0]["date"])
}

func TestPersistedBlobSurvivesRestart(t *testing.T) {
	app, mr := SetupTestApp(t)

	body, _ := json.Marshal(map[string]interface{}{
		"name": "Leg Day",
		"date": "2024-01-01",
		"exercises": []map[string]interface{}{
			{"name": "front squat", "sets": 5, "reps": 5, "weight": 80},
		},
	})
	req, _ := http.NewRequest("POST", "/v1/workouts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// The blob under the workouts key is the system of record
	blob, err := mr.Get("workouts")
	require.NoError(t, err)

	var stored []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(blob), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "Front Squat", stored[0]["exercises"].([]interface{})[0].(map[string]interface{})["name"])
	assert.Equal(t, 2000.0, stored[0]["totalWeight"])
}
