package pagination

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/healthcalc/internal/batch"
	"github.com/rshade/healthcalc/internal/health"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "valid default", params: *NewParams()},
		{name: "valid window", params: Params{Limit: 10, Offset: 20}},
		{name: "negative limit", params: Params{Limit: -1}, wantErr: ErrInvalidLimit},
		{name: "limit too large", params: Params{Limit: MaxLimit + 1}, wantErr: ErrInvalidLimit},
		{name: "negative offset", params: Params{Offset: -1}, wantErr: ErrInvalidOffset},
		{name: "bad order", params: Params{SortOrder: "up"}, wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParams_IsEnabled(t *testing.T) {
	assert.False(t, NewParams().IsEnabled())
	assert.True(t, Params{Limit: 1}.IsEnabled())
	assert.True(t, Params{Offset: 1}.IsEnabled())
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		input     string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{input: "", wantField: "", wantOrder: "asc"},
		{input: "bmi", wantField: "bmi", wantOrder: "asc"},
		{input: "bmi:desc", wantField: "bmi", wantOrder: "desc"},
		{input: " calories : DESC ", wantField: "calories", wantOrder: "desc"},
		{input: "bmi:sideways", wantErr: ErrInvalidSortOrder},
		{input: ":asc", wantErr: ErrEmptySortField},
		{input: "a:b:c", wantErr: ErrInvalidSortFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			field, order, err := ParseSort(tt.input)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestApply(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		params Params
		want   []int
	}{
		{name: "no window", params: Params{}, want: []int{1, 2, 3, 4, 5}},
		{name: "limit", params: Params{Limit: 2}, want: []int{1, 2}},
		{name: "offset", params: Params{Offset: 3}, want: []int{4, 5}},
		{name: "offset and limit", params: Params{Offset: 1, Limit: 3}, want: []int{2, 3, 4}},
		{name: "limit past end", params: Params{Offset: 4, Limit: 10}, want: []int{5}},
		{name: "offset past end", params: Params{Offset: 5}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.params, items))
		})
	}
}

func result(index int, name string, bmi float64, kcal int) batch.Result {
	category, _ := health.Categorize(bmi)
	return batch.Result{
		Index: index,
		Name:  name,
		Report: &health.Report{
			BMI:      health.BMIResult{Value: bmi, Category: category},
			Calories: health.CalorieResult{DailyCalories: kcal},
		},
	}
}

func sortedNames(results []batch.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}

func TestResultSorter_Sort(t *testing.T) {
	failed := batch.Result{Index: 3, Name: "broken", Error: "out of range", Err: health.ErrOutOfRange}
	results := []batch.Result{
		result(0, "carol", 31.0, 2400),
		failed,
		result(1, "alice", 22.0, 1900),
		result(2, "Bob", 26.5, 2100),
	}
	s := NewResultSorter()

	tests := []struct {
		field string
		order string
		want  []string
	}{
		{SortFieldBMI, SortOrderAsc, []string{"alice", "Bob", "carol", "broken"}},
		{SortFieldBMI, SortOrderDesc, []string{"carol", "Bob", "alice", "broken"}},
		{SortFieldCalories, SortOrderDesc, []string{"carol", "Bob", "alice", "broken"}},
		{SortFieldCategory, SortOrderAsc, []string{"alice", "Bob", "carol", "broken"}},
		{SortFieldName, SortOrderAsc, []string{"alice", "Bob", "broken", "carol"}},
		{SortFieldIndex, SortOrderAsc, []string{"carol", "alice", "Bob", "broken"}},
		{"weight", SortOrderAsc, []string{"carol", "broken", "alice", "Bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.field+":"+tt.order, func(t *testing.T) {
			assert.Equal(t, tt.want, sortedNames(s.Sort(results, tt.field, tt.order)))
		})
	}

	assert.Equal(t, "carol", results[0].Name, "input must not be modified")
}

func TestResultSorter_Fields(t *testing.T) {
	s := NewResultSorter()
	assert.Equal(t, []string{"bmi", "calories", "category", "index", "name"}, s.GetValidFields())
	assert.True(t, s.IsValidField("bmi"))
	assert.False(t, s.IsValidField("weight"))
}
