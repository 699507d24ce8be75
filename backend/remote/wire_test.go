package remote

import (
	"encoding/json"
	"testing"

	"github.com/deadtood/appcore/domain"
	"github.com/stretchr/testify/require"
)

func TestUnwrap(t *testing.T) {
	t.Run("bare value passes through", func(t *testing.T) {
		raw, err := unwrap(json.RawMessage(`{"id":"t1"}`))
		require.NoError(t, err)
		require.JSONEq(t, `{"id":"t1"}`, string(raw))
	})

	t.Run("envelope yields data", func(t *testing.T) {
		raw, err := unwrap(json.RawMessage(`{"success":true,"data":{"id":"t1"}}`))
		require.NoError(t, err)
		require.JSONEq(t, `{"id":"t1"}`, string(raw))
	})

	t.Run("envelope without data is malformed", func(t *testing.T) {
		_, err := unwrap(json.RawMessage(`{"success":true}`))
		require.Error(t, err)
		require.Contains(t, err.Error(), "missing data")

		_, err = unwrap(json.RawMessage(`{"success":true,"data":null}`))
		require.Error(t, err)
	})

	t.Run("array passes through", func(t *testing.T) {
		raw, err := unwrap(json.RawMessage(`[1,2,3]`))
		require.NoError(t, err)
		require.JSONEq(t, `[1,2,3]`, string(raw))
	})
}

func TestDecodePage(t *testing.T) {
	t.Run("paginated envelope passes through", func(t *testing.T) {
		page, err := decodePage[wireTask](json.RawMessage(
			`{"items":[{"id":"t1"}],"total":25,"page":2,"limit":10,"total_pages":3,"has_next":true,"has_prev":true}`))
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		require.Equal(t, 25, page.Total)
		require.Equal(t, 3, page.TotalPages)
		require.True(t, page.HasNext)
		require.True(t, page.HasPrev)
	})

	t.Run("bare array becomes a single page", func(t *testing.T) {
		page, err := decodePage[wireTask](json.RawMessage(`[{"id":"t1"},{"id":"t2"}]`))
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		require.Equal(t, 2, page.Total)
		require.Equal(t, 1, page.Page)
		require.False(t, page.HasNext)
		require.False(t, page.HasPrev)
	})

	t.Run("wrapped bare array", func(t *testing.T) {
		page, err := decodePage[wireTask](json.RawMessage(`{"success":true,"data":[{"id":"t1"}]}`))
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		require.Equal(t, 1, page.Total)
	})
}

func TestCreateTaskRoundTrip(t *testing.T) {
	req := domain.CreateTaskRequest{
		Title:    "Lab report",
		CourseID: "c2",
		DueDate:  "2026-09-15",
		DueTime:  "17:00",
		Priority: domain.PriorityHigh,
		Category: domain.CategoryChemistry,
	}

	payload, err := json.Marshal(createTaskToWire(req))
	require.NoError(t, err)

	t.Run("wire payload is snake_case", func(t *testing.T) {
		var keys map[string]any
		require.NoError(t, json.Unmarshal(payload, &keys))
		require.Contains(t, keys, "course_id")
		require.Contains(t, keys, "due_date")
		require.Contains(t, keys, "due_time")
		require.NotContains(t, keys, "courseId")
		require.Equal(t, "c2", keys["course_id"])
		require.Equal(t, "2026-09-15", keys["due_date"])
	})

	t.Run("mapped response restores the domain values", func(t *testing.T) {
		var echoed wireTask
		require.NoError(t, json.Unmarshal(payload, &echoed))
		echoed.ID = "t99"

		task := echoed.toDomain()
		require.Equal(t, req.CourseID, task.CourseID)
		require.Equal(t, req.DueTime, task.DueTime)
		require.Equal(t, req.DueDate, task.DueDate.Format("2006-01-02"))
		require.Equal(t, req.Priority, task.Priority)
	})
}

func TestWireTask_CourseFlattening(t *testing.T) {
	t.Run("nested course object wins", func(t *testing.T) {
		task := wireTask{
			ID:         "t1",
			CourseID:   "stale",
			CourseName: "stale name",
			Course: &wireCourse{
				ID:    "c5",
				Name:  "Data Structures",
				Code:  "CS240",
				Color: "#2D3436",
				Icon:  "code",
			},
		}.toDomain()

		require.Equal(t, "c5", task.CourseID)
		require.Equal(t, "Data Structures", task.CourseName)
		require.Equal(t, "CS240", task.CourseCode)
		require.Equal(t, domain.IconCode, task.CourseIcon)
	})

	t.Run("flat fields used when no nested object", func(t *testing.T) {
		task := wireTask{
			ID:         "t1",
			CourseID:   "c5",
			CourseName: "Data Structures",
			CourseCode: "CS240",
		}.toDomain()

		require.Equal(t, "c5", task.CourseID)
		require.Equal(t, "Data Structures", task.CourseName)
		require.Equal(t, "CS240", task.CourseCode)
	})
}

func TestParseWireDate(t *testing.T) {
	require.Equal(t, "2026-09-15", parseWireDate("2026-09-15").Format("2006-01-02"))
	require.Equal(t, "2026-09-15", parseWireDate("2026-09-15T12:30:00Z").Format("2006-01-02"))
	require.True(t, parseWireDate("garbage").IsZero())
}
