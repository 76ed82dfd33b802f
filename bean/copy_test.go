package bean

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/propkit/errors"
	"github.com/kbukum/propkit/util"
)

func newUserDTO() *userDTO { return &userDTO{Kind: "dto"} }

func TestCopyTo(t *testing.T) {
	src := sampleUser()
	got, err := CopyTo(src, newUserDTO)
	if err != nil {
		t.Fatalf("CopyTo() error = %v", err)
	}
	want := &userDTO{
		Kind:    "dto",
		ID:      7,
		Name:    src.Name,
		Email:   src.Email,
		Tags:    src.Tags,
		Address: src.Address,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CopyTo() mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyTo_NilSource(t *testing.T) {
	calls := 0
	factory := func() *userDTO {
		calls++
		return &userDTO{}
	}

	var nilUser *user
	for _, src := range []any{nil, nilUser} {
		got, err := CopyTo(src, factory)
		if err != nil {
			t.Fatalf("CopyTo(%v) error = %v", src, err)
		}
		if got != nil {
			t.Errorf("CopyTo(%v) = %+v, want nil", src, got)
		}
	}
	if calls != 0 {
		t.Errorf("factory called %d times for nil sources", calls)
	}
}

func TestCopyTo_ReturnsFreshInstance(t *testing.T) {
	src := sampleUser()
	first, err := CopyTo(src, func() *user { return &user{} })
	if err != nil {
		t.Fatalf("CopyTo() error = %v", err)
	}
	second, err := CopyTo(src, func() *user { return &user{} })
	if err != nil {
		t.Fatalf("CopyTo() error = %v", err)
	}
	if first == src || first == second {
		t.Error("expected a new record per call")
	}
	first.ID = 100
	if src.ID != 7 {
		t.Errorf("mutating the copy changed the source: ID=%d", src.ID)
	}
	if first.Kind != "" {
		t.Errorf("type tag must not be copied, got %q", first.Kind)
	}
}

func TestCopyTo_StructResult(t *testing.T) {
	got, err := CopyTo(sampleUser(), func() userDTO { return userDTO{Note: "n"} })
	if err != nil {
		t.Fatalf("CopyTo() error = %v", err)
	}
	if got.ID != 7 || got.Note != "n" {
		t.Errorf("expected value result to be filled, got %+v", got)
	}
}

func TestCopyTo_WithOptions(t *testing.T) {
	got, err := CopyTo(sampleUser(), newUserDTO, WithIgnore("Email"))
	if err != nil {
		t.Fatalf("CopyTo() error = %v", err)
	}
	if got.Email != "" {
		t.Errorf("expected Email to be ignored, got %q", got.Email)
	}
}

func TestCopyTo_InvalidFactory(t *testing.T) {
	_, err := CopyTo(sampleUser(), func() *userDTO { return nil })
	if !errors.Is(err, errors.ErrCodeInvalidTarget) {
		t.Errorf("expected INVALID_TARGET for nil factory result, got %v", err)
	}
}

func TestCopyList(t *testing.T) {
	src := []*user{
		{ID: 1, Email: "a"},
		{ID: 2, Email: "b"},
		{ID: 3, Email: "c"},
	}
	got, err := CopyList(src, newUserDTO)
	if err != nil {
		t.Fatalf("CopyList() error = %v", err)
	}
	if len(got) != len(src) {
		t.Fatalf("expected %d results, got %d", len(src), len(got))
	}
	for i := range src {
		if got[i].ID != src[i].ID || got[i].Email != src[i].Email {
			t.Errorf("result %d = %+v, want ID=%d", i, got[i], src[i].ID)
		}
	}
	if got[0] == got[1] {
		t.Error("expected a distinct record per element")
	}
}

func TestCopyList_NilAndEmpty(t *testing.T) {
	for _, src := range [][]*user{nil, {}} {
		got, err := CopyList(src, newUserDTO)
		if err != nil {
			t.Fatalf("CopyList() error = %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("CopyList(%v) = %#v, want empty non-nil slice", src, got)
		}
	}
}

func TestCopyList_NilElement(t *testing.T) {
	got, err := CopyList([]*user{{ID: 1}, nil}, newUserDTO)
	if err != nil {
		t.Fatalf("CopyList() error = %v", err)
	}
	if got[1] != nil {
		t.Errorf("expected nil element to stay nil, got %+v", got[1])
	}
}

func TestCopyList_ErrorCarriesIndex(t *testing.T) {
	type source struct{ ID string }
	type target struct{ ID int }

	_, err := CopyList([]source{{ID: "1"}}, func() *target { return &target{} })
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != errors.ErrCodeTypeMismatch {
		t.Errorf("expected TYPE_MISMATCH, got %s", appErr.Code)
	}
	if appErr.Details["index"] != 0 {
		t.Errorf("expected index detail 0, got %v", appErr.Details["index"])
	}
}

func TestCopyFunc(t *testing.T) {
	convert := CopyFunc(newUserDTO, func(u *user, dto *userDTO) {
		dto.Note = "city:" + u.Address.City
	})

	got, err := convert(sampleUser())
	if err != nil {
		t.Fatalf("convert() error = %v", err)
	}
	if got.ID != 7 || got.Note != "city:London" {
		t.Errorf("expected copy plus addition, got %+v", got)
	}

	got, err = convert(nil)
	if err != nil || got != nil {
		t.Errorf("convert(nil) = %v, %v; want nil, nil", got, err)
	}
}

func TestCopyFunc_AdditionsRunInOrder(t *testing.T) {
	var order []string
	convert := CopyFunc(newUserDTO,
		func(*user, *userDTO) { order = append(order, "first") },
		func(*user, *userDTO) { order = append(order, "second") },
	)
	if _, err := convert(&user{}); err != nil {
		t.Fatalf("convert() error = %v", err)
	}
	if diff := cmp.Diff([]string{"first", "second"}, order); diff != "" {
		t.Errorf("addition order mismatch (-want +got):\n%s", diff)
	}
}

type entry struct {
	Key   int
	Value string
}

func TestToMap_LastWriteWins(t *testing.T) {
	items := []entry{{1, "a"}, {2, "c"}, {1, "b"}}
	m := ToMap(items, func(e entry) int { return e.Key })

	if m.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", m.Len())
	}
	if v, _ := m.Get(1); v.Value != "b" {
		t.Errorf("expected key 1 to hold the last element, got %+v", v)
	}

	var keys []int
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	if diff := cmp.Diff([]int{1, 2}, keys); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestToMap_Empty(t *testing.T) {
	m := ToMap[string](nil, func(e entry) string { return e.Value })
	if m == nil || m.Len() != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}

func TestRoundTrip(t *testing.T) {
	src := sampleUser()
	dto, err := CopyTo(src, newUserDTO)
	if err != nil {
		t.Fatalf("CopyTo() error = %v", err)
	}
	back, err := CopyTo(dto, func() *user { return &user{Kind: "user", Created: src.Created} })
	if err != nil {
		t.Fatalf("CopyTo() back error = %v", err)
	}
	if diff := cmp.Diff(src, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAllFieldsAbsent(t *testing.T) {
	type filter struct {
		Kind string `bean:",type"`
		Name *string
		Tags []string
		Meta map[string]string
	}

	var nilFilter *filter
	tests := []struct {
		name   string
		record any
		want   bool
	}{
		{"nil", nil, true},
		{"typed nil", nilFilter, true},
		{"all nil with type tag set", filter{Kind: "filter"}, true},
		{"pointer to all nil", &filter{}, true},
		{"one field set", filter{Name: util.Ptr("")}, false},
		{"empty map is not nil", filter{Meta: map[string]string{}}, false},
		{"value field never absent", user{}, false},
		{"non-struct", 5, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AllFieldsAbsent(tc.record); got != tc.want {
				t.Errorf("AllFieldsAbsent(%#v) = %v, want %v", tc.record, got, tc.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	type point struct {
		Kind string `bean:",type"`
		X    int
		Y    *int `bean:"y_axis"`
		z    float64
	}

	got, err := Describe(&point{Kind: "p", X: 1})
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	want := []Descriptor{
		{Name: "Kind", Value: "p", TypeTag: true},
		{Name: "X", Value: 1},
		{Name: "y_axis", Value: (*int)(nil)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Describe() mismatch (-want +got):\n%s", diff)
	}

	if got, err := Describe(nil); err != nil || got != nil {
		t.Errorf("Describe(nil) = %v, %v; want nil, nil", got, err)
	}
	if _, err := Describe(3); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT for non-struct, got %v", err)
	}
}

func TestNullAndEmptyFieldNames(t *testing.T) {
	u := &user{Kind: "user", Email: " ", Tags: []string{"x"}}

	if diff := cmp.Diff([]string{"Name", "Address"}, NullFieldNames(u)); diff != "" {
		t.Errorf("NullFieldNames() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Name", "Email", "Address"}, EmptyFieldNames(u)); diff != "" {
		t.Errorf("EmptyFieldNames() mismatch (-want +got):\n%s", diff)
	}
	if NullFieldNames(nil) != nil {
		t.Error("expected nil names for nil record")
	}
}
