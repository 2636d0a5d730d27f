//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"

	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/handler/dto/response"
	"lab-dashboard/tests/common/authtest"
	"lab-dashboard/tests/common/builder"
	"lab-dashboard/tests/common/dbtest"
	"lab-dashboard/tests/common/httptest"
	"lab-dashboard/tests/common/testutil"
	"lab-dashboard/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type reservationSuite struct {
	e2e.SharedSuite
	staffToken  string
	staffID     uuid.UUID
	equipmentID uuid.UUID
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()
	s.staffID = dbtest.CreateTestUser(t, s.DB, "alice@example.com", string(user.RoleStaff))
	s.staffToken = authtest.LoginUser(t, s.Router, "alice@example.com", dbtest.DefaultPassword)
	s.equipmentID = dbtest.CreateTestEquipment(t, s.DB, "Confocal Microscope", "microscope")
}

func (s *reservationSuite) newRequest() *builder.BookingBuilder {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.EquipmentID = s.equipmentID
		b.EquipmentName = "Confocal Microscope"
	})
}

func (s *reservationSuite) TestCreateReservation() {
	s.Run("スタッフは予約を作成できる", func() {
		t := s.T()

		reqBody := s.newRequest().On("2024-06-03").Between("13:00", "15:30").OwnedBy("Bob").WithNote("calibration").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.staffToken)

		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		httptest.AssertHeaders(t, w, map[string]string{"Location": reservationsURL + "/" + created.ID.String()})

		email := "alice@example.com"
		expected := &response.ReservationResponse{
			EquipmentID:    s.equipmentID,
			EquipmentName:  "Confocal Microscope",
			Date:           "2024-06-03",
			StartTime:      "13:00",
			EndTime:        "15:30",
			Owner:          "Bob",
			Note:           "calibration",
			CreatedBy:      &s.staffID,
			CreatedByEmail: &email,
		}
		opts := cmpopts.IgnoreFields(response.ReservationResponse{}, "ID", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(expected, &created, opts); diff != "" {
			t.Errorf("Reservation response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("利用者名を省略すると表示名が使われる", func() {
		t := s.T()

		reqBody := s.newRequest().OwnedBy("").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.staffToken)

		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "alice", created.Owner)
	})

	s.Run("終了00:00を受け付ける", func() {
		t := s.T()

		reqBody := s.newRequest().Between("20:00", "00:00").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.staffToken)

		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "00:00", created.EndTime, "保存時は入力どおり")
	})

	s.Run("不正な入力は400", func() {
		t := s.T()

		base := s.newRequest().BuildCreateRequestDTO()
		cases := []struct {
			name string
			body map[string]any
		}{
			{"日付の形式", testutil.DtoMap(t, base, testutil.Field("date", "2024/06/01"))},
			{"存在しない日付", testutil.DtoMap(t, base, testutil.Field("date", "2024-02-30"))},
			{"開始時刻の形式", testutil.DtoMap(t, base, testutil.Field("startTime", "9:00"))},
			{"24時", testutil.DtoMap(t, base, testutil.Field("endTime", "24:00"))},
			{"機器IDなし", testutil.DtoMap(t, base, testutil.Field("equipmentId", nil))},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, tc.body, s.staffToken)
			require.Equal(t, http.StatusBadRequest, w.Code, "%s: %s", tc.name, w.Body.String())
		}
	})

	s.Run("存在しない機器は404", func() {
		t := s.T()

		reqBody := s.newRequest().With(func(b *builder.BookingBuilder) { b.EquipmentID = uuid.New() }).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.staffToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Equipment not found")
	})

	s.Run("重複する予約も受け付ける", func() {
		t := s.T()

		for range 2 {
			reqBody := s.newRequest().Between("09:00", "11:00").BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.staffToken)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}
	})

	s.Run("閲覧者は予約できない", func() {
		t := s.T()

		viewerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "viewer@example.com", string(user.RoleViewer))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.newRequest().BuildCreateRequestDTO(), viewerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *reservationSuite) TestUpdateReservation() {
	s.Run("自分の予約は変更できる", func() {
		t := s.T()

		id := s.reserve("09:00", "10:00", &s.staffID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationsURL+"/"+id.String(),
			map[string]string{"endTime": "12:00", "note": "extended"}, s.staffToken)

		var res response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "09:00", res.StartTime)
		require.Equal(t, "12:00", res.EndTime)
		require.Equal(t, "extended", res.Note)
		require.True(t, res.UpdatedAt.Equal(s.Clock.Now()))
	})

	s.Run("他人の予約は変更できない", func() {
		t := s.T()

		otherID := dbtest.CreateTestUser(t, s.DB, "bob@example.com", string(user.RoleStaff))
		id := s.reserve("09:00", "10:00", &otherID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationsURL+"/"+id.String(),
			map[string]string{"owner": "Mallory"}, s.staffToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Reservation belongs to another user")
	})

	s.Run("管理者は誰の予約でも変更できる", func() {
		t := s.T()

		id := s.reserve("09:00", "10:00", &s.staffID)
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		other := dbtest.CreateTestEquipment(t, s.DB, "PCR Machine", "")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationsURL+"/"+id.String(),
			map[string]string{"equipmentId": other.String()}, adminToken)

		var res response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, other, res.EquipmentID)
		require.Equal(t, "PCR Machine", res.EquipmentName)
	})

	s.Run("存在しない予約は404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, reservationsURL+"/"+uuid.NewString(),
			map[string]string{"note": "x"}, s.staffToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Reservation not found")
	})
}

func (s *reservationSuite) TestDeleteReservation() {
	s.Run("自分の予約は削除できる", func() {
		t := s.T()

		id := s.reserve("09:00", "10:00", &s.staffID)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+id.String(), nil, s.staffToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+id.String(), nil, s.staffToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("作成者不明の予約はスタッフには削除できない", func() {
		t := s.T()

		id := s.reserve("09:00", "10:00", nil)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+id.String(), nil, s.staffToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestListReservations() {
	s.Run("予定順にページングされる", func() {
		t := s.T()

		var want []uuid.UUID
		for day := 1; day <= 3; day++ {
			date := fmt.Sprintf("2024-06-%02d", day)
			for _, start := range []string{"09:00", "13:00"} {
				want = append(want, dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{
					EquipmentID: s.equipmentID, EquipmentName: "Confocal Microscope",
					Date: date, StartTime: start, EndTime: "10:00", Owner: "Alice",
				}))
			}
		}

		var got []uuid.UUID
		url := reservationsURL + "?limit=4"
		for pages := 0; ; pages++ {
			require.Less(t, pages, 3, "ページが終わらない")

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.staffToken)
			var page response.ReservationPageResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
			for _, r := range page.Reservations {
				got = append(got, r.ID)
			}
			if page.NextCursor == nil {
				break
			}
			url = reservationsURL + "?limit=4&cursor=" + *page.NextCursor
		}
		require.Equal(t, want, got)
	})

	s.Run("機器と期間で絞り込める", func() {
		t := s.T()

		other := dbtest.CreateTestEquipment(t, s.DB, "PCR Machine", "")
		keep := dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{
			EquipmentID: s.equipmentID, EquipmentName: "Confocal Microscope",
			Date: "2024-06-02", StartTime: "09:00", EndTime: "10:00", Owner: "Alice",
		})
		dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{
			EquipmentID: s.equipmentID, EquipmentName: "Confocal Microscope",
			Date: "2024-06-05", StartTime: "09:00", EndTime: "10:00", Owner: "Alice",
		})
		dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{
			EquipmentID: other, EquipmentName: "PCR Machine",
			Date: "2024-06-02", StartTime: "09:00", EndTime: "10:00", Owner: "Bob",
		})

		url := fmt.Sprintf("%s?equipmentId=%s&from=2024-06-01&to=2024-06-03", reservationsURL, s.equipmentID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.staffToken)

		var page response.ReservationPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Reservations, 1)
		require.Equal(t, keep, page.Reservations[0].ID)
		require.Nil(t, page.NextCursor)
	})

	s.Run("不正なカーソルと期間は400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?cursor=garbage", nil, s.staffToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cursor")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?from=2024-06-05&to=2024-06-01", nil, s.staffToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid filter")
	})
}

func (s *reservationSuite) reserve(start, end string, createdBy *uuid.UUID) uuid.UUID {
	return dbtest.CreateTestReservation(s.T(), s.DB, dbtest.ReservationFixture{
		EquipmentID:   s.equipmentID,
		EquipmentName: "Confocal Microscope",
		Date:          "2024-06-01",
		StartTime:     start,
		EndTime:       end,
		Owner:         "Alice",
		CreatedBy:     createdBy,
	})
}
