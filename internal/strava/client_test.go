package strava

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestActivityIsRace(t *testing.T) {
	tests := []struct {
		name     string
		activity Activity
		want     bool
	}{
		{"tagged run", Activity{Type: "Run", WorkoutType: intPtr(WorkoutTypeRace)}, true},
		{"tagged trail run", Activity{Type: "Run", SportType: "TrailRun", WorkoutType: intPtr(1)}, true},
		{"long run", Activity{Type: "Run", WorkoutType: intPtr(2)}, false},
		{"untagged run", Activity{Type: "Run"}, false},
		{"ride tagged as race", Activity{Type: "Ride", SportType: "Ride", WorkoutType: intPtr(11)}, false},
		{"ride with workout type 1", Activity{Type: "Ride", WorkoutType: intPtr(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.activity.IsRace(); got != tt.want {
				t.Errorf("IsRace() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActivityRaceDuration(t *testing.T) {
	a := Activity{ElapsedTime: 1200, MovingTime: 1180}
	if got := a.RaceDuration(); got != 20*time.Minute {
		t.Errorf("RaceDuration() = %v, want 20m", got)
	}

	a = Activity{MovingTime: 1180}
	if got := a.RaceDuration(); got != 1180*time.Second {
		t.Errorf("RaceDuration() = %v, want moving time fallback", got)
	}
}

func TestGetAllActivitiesPaginates(t *testing.T) {
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/athlete/activities" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("after"); got != "1700000000" {
			t.Errorf("after = %q", got)
		}
		page := r.URL.Query().Get("page")
		pages = append(pages, page)

		w.Header().Set("X-RateLimit-Limit", "100,1000")
		w.Header().Set("X-RateLimit-Usage", fmt.Sprintf("%s,50", page))
		w.Header().Set("Content-Type", "application/json")

		// First page full, second page short
		n := MaxPerPage
		if page == "2" {
			n = 3
		}
		items := make([]string, n)
		for i := range items {
			items[i] = fmt.Sprintf(`{"id":%s%03d,"name":"run","type":"Run","workout_type":null,"distance":5000,"elapsed_time":1500,"start_date":"2026-03-01T08:00:00Z"}`, page, i)
		}
		fmt.Fprintf(w, "[%s]", strings.Join(items, ","))
	}))
	defer srv.Close()

	c := NewClientWithHTTP(srv.Client(), srv.URL)
	c.rateLimiter.minInterval = 0

	var progress []int
	activities, err := c.GetAllActivities(context.Background(), time.Unix(1700000000, 0), func(n int) {
		progress = append(progress, n)
	})
	if err != nil {
		t.Fatalf("GetAllActivities() error = %v", err)
	}

	if len(activities) != MaxPerPage+3 {
		t.Errorf("got %d activities, want %d", len(activities), MaxPerPage+3)
	}
	if strings.Join(pages, ",") != "1,2" {
		t.Errorf("pages requested = %v", pages)
	}
	if len(progress) != 2 || progress[1] != MaxPerPage+3 {
		t.Errorf("progress = %v", progress)
	}
	if activities[0].WorkoutType != nil {
		t.Errorf("WorkoutType = %v, want nil for null", *activities[0].WorkoutType)
	}
	if !activities[0].StartDate.Equal(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v", activities[0].StartDate)
	}

	short, daily := c.RateLimitStatus()
	if short != 98 || daily != 950 {
		t.Errorf("RateLimitStatus() = %d,%d, want 98,950", short, daily)
	}
}

func TestGetActivitiesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Authorization Error"}`)
	}))
	defer srv.Close()

	c := NewClientWithHTTP(srv.Client(), srv.URL)
	_, err := c.GetActivities(context.Background(), time.Time{}, 1, 10)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Error(), "Authorization Error") {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestRateLimiterUpdateFromHeaders(t *testing.T) {
	tests := []struct {
		name      string
		limit     string
		usage     string
		wantShort int
		wantDaily int
	}{
		{"normal", "100,1000", "34,512", 66, 488},
		{"raised limits", "200,2000", "10,10", 190, 1990},
		{"malformed usage ignored", "100,1000", "abc", 100, 1000},
		{"spaces tolerated", "100, 1000", "1, 2", 99, 998},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRateLimiter()
			h := http.Header{}
			h.Set("X-RateLimit-Limit", tt.limit)
			h.Set("X-RateLimit-Usage", tt.usage)
			r.UpdateFromHeaders(h)

			short, daily := r.Status()
			if short != tt.wantShort || daily != tt.wantDaily {
				t.Errorf("Status() = %d,%d, want %d,%d", short, daily, tt.wantShort, tt.wantDaily)
			}
		})
	}
}

func TestRateLimiterWaitCountsRequests(t *testing.T) {
	r := NewRateLimiter()
	r.minInterval = 0

	for i := 0; i < 3; i++ {
		if err := r.Wait(context.Background()); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	}

	short, daily := r.Status()
	if short != defaultShortLimit-3 || daily != defaultDailyLimit-3 {
		t.Errorf("Status() = %d,%d, want %d,%d", short, daily, defaultShortLimit-3, defaultDailyLimit-3)
	}
}

func TestRateLimiterWaitHonoursContext(t *testing.T) {
	r := NewRateLimiter()
	h := http.Header{}
	h.Set("X-RateLimit-Usage", strconv.Itoa(defaultShortLimit)+",10")
	r.UpdateFromHeaders(h)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := r.Wait(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait() error = %v, want DeadlineExceeded", err)
	}
	if time.Since(start) > time.Second {
		t.Errorf("Wait() took %v after cancellation", time.Since(start))
	}
}
