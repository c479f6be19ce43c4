//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/handler/api"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/infra"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/tests/common/builder"
	"reservation-engine/tests/common/httptest"
	"reservation-engine/tests/common/testutil"
	commandsmock "reservation-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SeriesHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSeriesBatchCommands
}

func (s *SeriesHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSeriesBatchCommands(s.mockCtrl)
	s.router.POST("/series/:id/batch-edit", api.NewSeriesHandler(s.mockCommands).BatchEdit)
}

func (s *SeriesHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSeriesHandlerSuite(t *testing.T) {
	suite.Run(t, new(SeriesHandlerTestSuite))
}

type testCaseSeries struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *SeriesHandlerTestSuite) TestBatchEdit() {
	seriesID := uuid.New()
	url := "/series/" + seriesID.String() + "/batch-edit"
	edit := builder.NewSeriesEditBuilder()
	reqBody := edit.BuildRequestDTO()

	s.Run("success: 200 OK when every occurrence is updated", func() {
		result := builder.BuildBatchResult(seriesID, 3, 0)
		s.mockCommands.EXPECT().EditSeries(gomock.Any(), seriesID, edit.BuildPatch()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BatchResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ok", body.Outcome)
		s.Equal(result.Succeeded, body.Succeeded)
		s.Empty(body.Failed)
		s.NotNil(body.Untouched)
	})

	s.Run("success: 207 Multi-Status when the probe fails", func() {
		result := builder.BuildBatchResult(seriesID, 9, 1)
		result.ProbeFailed = true
		result.Untouched = []uuid.UUID{uuid.New(), uuid.New()}
		s.mockCommands.EXPECT().EditSeries(gomock.Any(), seriesID, gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BatchResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusMultiStatus, &body)
		s.Equal("probe_failed", body.Outcome)
		s.True(body.ProbeFailed)
		s.Len(body.Untouched, 2)
		s.Require().Len(body.Failed, 1)
		s.Equal(resdto.ItemFailureResponse{
			ReservationID: result.Failed[0].ReservationID,
			Phase:         "probe",
			Kind:          "PERMANENT",
			Attempts:      2,
			Message:       "connection reset",
		}, body.Failed[0])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseSeries{
			{name: "state only", mutate: func(m map[string]any) {
				testutil.Only()(m)
				m["state"] = "DENIED"
			}, expectCode: http.StatusOK},
			{name: "time of day not HH:MM", mutate: testutil.Field("startTime", "9am"), expectCode: http.StatusBadRequest},
			{name: "start after end", mutate: testutil.Field("startTime", "11:00"), expectCode: http.StatusBadRequest},
			{name: "negative buffer", mutate: testutil.Field("bufferAfterMinutes", -5), expectCode: http.StatusBadRequest},
			{name: "buffer of a full day", mutate: testutil.Field("bufferBeforeMinutes", 1440), expectCode: http.StatusOK},
			{name: "buffer longer than a day", mutate: testutil.Field("bufferBeforeMinutes", 1441), expectCode: http.StatusBadRequest},
			{name: "buffer overflowing seconds", mutate: testutil.Field("bufferBeforeMinutes", 40000000), expectCode: http.StatusBadRequest},
			{name: "confirmed is not a target state", mutate: testutil.Field("state", "CONFIRMED"), expectCode: http.StatusBadRequest},
			{name: "unknown state", mutate: testutil.Field("state", "LOST"), expectCode: http.StatusBadRequest},
			{name: "empty change", mutate: testutil.Only(), expectCode: http.StatusBadRequest},
			{name: "buffers only", mutate: testutil.Only("bufferBeforeMinutes", "bufferAfterMinutes"), expectCode: http.StatusOK},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().EditSeries(gomock.Any(), seriesID, gomock.Any()).
						Return(builder.BuildBatchResult(seriesID, 1, 0), nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 400 carries the validation detail", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("endTime", "08:00")))

		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid change")
		s.Equal(reservation.ErrInvalidPatchTimes.Error(), resp.Detail)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown series",
				err:            infra.WrapRepoErr("fetch series", errs.ErrSeriesNotFound, infra.KindNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "rejected patch",
				err:            errs.Mark(errors.New("empty"), errs.ErrInvalidPatch),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid change",
			},
			{
				name:           "internal server error",
				err:            errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().EditSeries(gomock.Any(), seriesID, gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed series id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/series/123/batch-edit", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
