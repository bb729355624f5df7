package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/attendance-calculator/internal/config"
	"github.com/KasumiMercury/attendance-calculator/internal/domain"
	"github.com/KasumiMercury/attendance-calculator/internal/observability/metrics"
	"github.com/KasumiMercury/attendance-calculator/internal/service/attendance"
	"github.com/KasumiMercury/attendance-calculator/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRouter(t *testing.T, calc Calculator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := LoadTemplates()
	if err != nil {
		t.Fatalf("LoadTemplates() error: %v", err)
	}

	h := NewAttendanceHandler(calc, nil)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/", h.HandleIndex)
	r.POST("/calculate", h.HandleCalculateForm)
	r.POST("/api/v1/calculate", h.HandleCalculateAPI)
	r.GET("/api/v1/policy", h.HandlePolicy)
	return r
}

func postForm(r http.Handler, arrival, breakSpent string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set(formFieldArrivalTime, arrival)
	form.Set(formFieldBreakTimeSpent, breakSpent)

	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAttendanceHandler_HandleIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCalc := NewMockCalculator(ctrl)
	mockCalc.EXPECT().Policy().Return(config.DefaultPolicy())

	r := newTestRouter(t, mockCalc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`name="arrival_time"`,
		`name="break_time_spent"`,
		`pattern="[0-9]{2}:[0-9]{2}"`,
		"Arrive between 08:00 and 10:00.",
		"work at least 7h 30m",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("index page missing %q", want)
		}
	}
	if strings.Contains(body, `id="result"`) {
		t.Error("index page should not render a result block")
	}
}

func TestAttendanceHandler_HandleCalculateForm_Result(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCalc := NewMockCalculator(ctrl)
	mockCalc.EXPECT().Policy().Return(config.DefaultPolicy())
	mockCalc.EXPECT().
		Calculate("08:00", "01:00").
		Return(&attendance.Result{
			DepartureTime:     "17:00",
			BreakTimeSpent:    "1:00:00",
			BreakTimeLeft:     "0:30:00",
			EffectiveWorkTime: "8:00:00",
			StatusMessage:     "You can meet your work time requirement. You have 0:30:00 break time remaining.",
			Severity:          domain.SeverityRemaining,
			Tone:              domain.ToneSuccess,
		}, nil)

	r := newTestRouter(t, mockCalc)
	w := postForm(r, "08:00", "01:00")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`value="08:00"`,
		`value="01:00"`,
		`<dd id="departure_time">17:00</dd>`,
		`<dd id="break_time_left">0:30:00</dd>`,
		`<dd id="effective_work_time">8:00:00</dd>`,
		colorSuccess,
		`data-severity="remaining"`,
		"You have 0:30:00 break time remaining.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("result page missing %q", want)
		}
	}
}

func TestAttendanceHandler_HandleCalculateForm_BreakExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCalc := NewMockCalculator(ctrl)
	mockCalc.EXPECT().Policy().Return(config.DefaultPolicy())
	mockCalc.EXPECT().
		Calculate("08:00", "02:00").
		Return(&attendance.Result{
			DepartureTime:     "18:00",
			BreakTimeSpent:    "2:00:00",
			BreakTimeLeft:     "0:00:00",
			EffectiveWorkTime: "8:00:00",
			StatusMessage:     "You have exceeded your break time by 0:30:00.",
			Severity:          domain.SeverityExceeded,
			Tone:              domain.ToneWarning,
		}, nil)

	r := newTestRouter(t, mockCalc)
	w := postForm(r, "08:00", "02:00")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		colorWarning,
		`data-severity="exceeded"`,
		"You have exceeded your break time by 0:30:00.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("result page missing %q", want)
		}
	}
	if strings.Contains(body, colorSuccess) {
		t.Error("exceeded result should not use the success color")
	}
}

func TestAttendanceHandler_HandleCalculateForm_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCalc := NewMockCalculator(ctrl)
	mockCalc.EXPECT().Policy().Return(config.DefaultPolicy())
	mockCalc.EXPECT().
		Calculate("07:00", "00:30").
		Return(nil, domain.NewOutOfRangeError(domain.FieldArrivalTime, "Arrival time must be between 08:00 AM and 10:00 AM."))

	r := newTestRouter(t, mockCalc)
	w := postForm(r, "07:00", "00:30")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Arrival time must be between 08:00 AM and 10:00 AM.") {
		t.Error("page missing out of range message")
	}
	if !strings.Contains(body, colorError) {
		t.Error("page missing error color")
	}
	if strings.Contains(body, `id="result"`) {
		t.Error("page should not render result fields after a validation error")
	}
	if !strings.Contains(body, `value="07:00"`) {
		t.Error("page should echo the submitted arrival time")
	}
}

func TestAttendanceHandler_HandleCalculateForm_UnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCalc := NewMockCalculator(ctrl)
	mockCalc.EXPECT().Policy().Return(config.DefaultPolicy())
	mockCalc.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	r := newTestRouter(t, mockCalc)
	w := postForm(r, "08:00", "00:30")

	if !strings.Contains(w.Body.String(), unexpectedErrorMessage) {
		t.Error("page missing generic error message")
	}
}

func TestAttendanceHandler_HandleCalculateAPI(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *MockCalculator)
		wantStatus int
		wantError  string
		wantField  string
	}{
		{
			name: "success",
			body: `{"arrival_time":"08:00","break_time_spent":"01:30"}`,
			setup: func(m *MockCalculator) {
				m.EXPECT().Calculate("08:00", "01:30").Return(&attendance.Result{
					DepartureTime: "17:00",
					Severity:      domain.SeverityExact,
					Tone:          domain.ToneSuccess,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing field",
			body:       `{"arrival_time":"08:00"}`,
			setup:      func(m *MockCalculator) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "validation_error",
		},
		{
			name:       "invalid json",
			body:       `{`,
			setup:      func(m *MockCalculator) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "validation_error",
		},
		{
			name: "malformed input",
			body: `{"arrival_time":"9:00","break_time_spent":"01:30"}`,
			setup: func(m *MockCalculator) {
				m.EXPECT().Calculate("9:00", "01:30").
					Return(nil, domain.NewMalformedInputError(domain.FieldArrivalTime, "bad format"))
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "malformed_input",
			wantField:  "arrival_time",
		},
		{
			name: "unexpected error",
			body: `{"arrival_time":"08:00","break_time_spent":"01:30"}`,
			setup: func(m *MockCalculator) {
				m.EXPECT().Calculate("08:00", "01:30").Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "processing_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCalc := NewMockCalculator(ctrl)
			tt.setup(mockCalc)

			r := newTestRouter(t, mockCalc)
			w := postJSON(r, tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantError == "" {
				var got attendance.Result
				if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
					t.Fatalf("failed to decode result: %v", err)
				}
				if got.DepartureTime != "17:00" || got.Severity != domain.SeverityExact {
					t.Errorf("result = %+v", got)
				}
				return
			}

			var got ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode error: %v", err)
			}
			if got.Error != tt.wantError {
				t.Errorf("error = %q, want %q", got.Error, tt.wantError)
			}
			if got.Field != tt.wantField {
				t.Errorf("field = %q, want %q", got.Field, tt.wantField)
			}
		})
	}
}

func TestAttendanceHandler_HandlePolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCalc := NewMockCalculator(ctrl)
	mockCalc.EXPECT().Policy().Return(config.DefaultPolicy())

	r := newTestRouter(t, mockCalc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/policy", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got attendance.PolicySummary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode policy: %v", err)
	}
	if got.RequiredWorkMinutes != 450 || got.MinArrival != "08:00" {
		t.Errorf("policy = %+v", got)
	}
}

func TestAttendanceHandler_WithRealCalculator(t *testing.T) {
	r := newTestRouter(t, attendance.NewCalculator(config.DefaultPolicy()))

	w := postForm(r, "08:00", "02:00")
	body := w.Body.String()

	// html/template escapes the apostrophe in "you've".
	if !strings.Contains(body, "Warning: Your effective work time (7:00:00) is less than the required 7h 30m.") {
		t.Errorf("page missing insufficient work warning: %s", body)
	}
	if !strings.Contains(body, `data-severity="error"`) {
		t.Error("page missing error severity")
	}
}

func TestAttendanceHandler_RecordsTelemetry(t *testing.T) {
	recorder := testutil.InstallSpanRecorder(t)
	provider, reader := testutil.NewManualMeterProvider(t)

	attendanceMetrics, err := metrics.NewAttendanceMetricsWithProvider(provider)
	if err != nil {
		t.Fatalf("NewAttendanceMetricsWithProvider() error: %v", err)
	}

	gin.SetMode(gin.TestMode)
	h := NewAttendanceHandler(attendance.NewCalculator(config.DefaultPolicy()), attendanceMetrics)
	r := gin.New()
	r.POST("/api/v1/calculate", h.HandleCalculateAPI)

	postJSON(r, `{"arrival_time":"08:00","break_time_spent":"01:30"}`)
	postJSON(r, `{"arrival_time":"11:00","break_time_spent":"01:30"}`)

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("ended spans = %d, want 2", len(spans))
	}
	for _, s := range spans {
		if s.Name() != "attendance.calculate" {
			t.Errorf("span name = %s", s.Name())
		}
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error: %v", err)
	}

	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if sum, ok := md.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					totals[md.Name] += dp.Value
				}
			}
		}
	}

	if totals["attendance_calculations_total"] != 2 {
		t.Errorf("attendance_calculations_total = %d, want 2", totals["attendance_calculations_total"])
	}
	if totals["attendance_validation_failures_total"] != 1 {
		t.Errorf("attendance_validation_failures_total = %d, want 1", totals["attendance_validation_failures_total"])
	}
}
