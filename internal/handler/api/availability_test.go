package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"padelhub/internal/handler/api"
	resdto "padelhub/internal/handler/dto/response"
	"padelhub/internal/pkg/errs"
	"padelhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeAvailabilityQueries struct {
	slots []queries.SlotView
	err   error

	gotCourtID uuid.UUID
	gotDate    string
}

func (f *fakeAvailabilityQueries) GetDayAvailability(_ context.Context, courtID uuid.UUID, date string) ([]queries.SlotView, error) {
	f.gotCourtID = courtID
	f.gotDate = date
	return f.slots, f.err
}

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	queries *fakeAvailabilityQueries
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.queries = &fakeAvailabilityQueries{}
	handler := api.NewAvailabilityHandler(s.queries)
	s.router.GET("/courts/:id/availability", handler.GetDayAvailability)
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AvailabilityHandlerTestSuite) TestReturnsSlots() {
	courtID := uuid.New()
	start := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	s.queries.slots = []queries.SlotView{
		{Start: start, End: start.Add(time.Hour), Available: true, Status: "available"},
		{Start: start.Add(time.Hour), End: start.Add(2 * time.Hour), Available: false, Status: "occupied", Reason: "Ocupado"},
	}

	rec := s.get("/courts/" + courtID.String() + "/availability?date=2025-03-10")
	s.Equal(http.StatusOK, rec.Code)

	var resp resdto.DayAvailabilityResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(courtID.String(), resp.CourtID)
	s.Equal("2025-03-10", resp.Date)
	s.Len(resp.Slots, 2)
	s.True(resp.Slots[0].Available)
	s.Equal("Ocupado", resp.Slots[1].Reason)

	s.Equal(courtID, s.queries.gotCourtID)
	s.Equal("2025-03-10", s.queries.gotDate)
}

func (s *AvailabilityHandlerTestSuite) TestClosedDayReturnsEmptyList() {
	s.queries.slots = []queries.SlotView{}

	rec := s.get("/courts/" + uuid.NewString() + "/availability?date=2025-03-11")
	s.Equal(http.StatusOK, rec.Code)

	var resp resdto.DayAvailabilityResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotNil(resp.Slots)
	s.Empty(resp.Slots)
}

func (s *AvailabilityHandlerTestSuite) TestInvalidCourtID() {
	rec := s.get("/courts/not-a-uuid/availability?date=2025-03-10")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AvailabilityHandlerTestSuite) TestMissingDate() {
	rec := s.get("/courts/" + uuid.NewString() + "/availability")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AvailabilityHandlerTestSuite) TestInvalidDate() {
	s.queries.err = queries.ErrInvalidDate

	rec := s.get("/courts/" + uuid.NewString() + "/availability?date=03-10-2025")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AvailabilityHandlerTestSuite) TestCourtNotFound() {
	s.queries.err = queries.ErrCourtNotFound

	rec := s.get("/courts/" + uuid.NewString() + "/availability?date=2025-03-10")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *AvailabilityHandlerTestSuite) TestStoreFailureIs500() {
	s.queries.err = errs.New("pool exhausted")

	rec := s.get("/courts/" + uuid.NewString() + "/availability?date=2025-03-10")
	s.Equal(http.StatusInternalServerError, rec.Code)
}
