package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"lostfound-api/models"
)

var countCategoriesPattern = regexp.MustCompile(`SELECT count\(\*\) FROM .categories. WHERE category_id = \?`)

func validItemInput() CreateItemInput {
	return CreateItemInput{
		Name:          "Black iPhone",
		Description:   "Cracked screen, purple case",
		CategoryID:    2,
		LocationFound: "Science Building room 104",
		DateFound:     "2026-02-14",
		ReportedBy:    9,
	}
}

func TestCreateItemValidation(t *testing.T) {
	cases := []struct {
		name  string
		mutate func(*CreateItemInput)
		field string
	}{
		{"empty name", func(in *CreateItemInput) { in.Name = "   " }, "name"},
		{"empty description", func(in *CreateItemInput) { in.Description = "" }, "description"},
		{"empty location", func(in *CreateItemInput) { in.LocationFound = "\t" }, "location_found"},
		{"missing category", func(in *CreateItemInput) { in.CategoryID = 0 }, "category_id"},
		{"bad date", func(in *CreateItemInput) { in.DateFound = "02/14/2026" }, "date_found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, state, cleanup := newScriptedGormDB(t, nil)
			defer cleanup()

			in := validItemInput()
			tc.mutate(&in)

			_, err := NewItemService(db).Create(in)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, vErr.Field)
			}

			if err := state.verifyComplete(); err != nil {
				t.Fatalf("validation must not touch the database: %v", err)
			}
		})
	}
}

func TestCreateItemStartsAsFound(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: countCategoriesPattern,
			args:    []driver.Value{int64(2)},
			columns: []string{"count"},
			rows:    [][]driver.Value{{int64(1)}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`INSERT INTO .items.`),
			result:  scriptedResult{lastInsertID: 5, rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	item, err := NewItemService(db).Create(validItemInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if item.ItemID != 5 {
		t.Fatalf("expected item id 5, got %d", item.ItemID)
	}
	if item.Status != models.ItemStatusFound {
		t.Fatalf("expected status found, got %q", item.Status)
	}
	if got := item.DateFound.Format("2006-01-02"); got != "2026-02-14" {
		t.Fatalf("unexpected date_found: %s", got)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateItemRejectsUnknownCategory(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: countCategoriesPattern,
			args:    []driver.Value{int64(2)},
			columns: []string{"count"},
			rows:    [][]driver.Value{{int64(0)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	_, err := NewItemService(db).Create(validItemInput())
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "category_id" {
		t.Fatalf("expected category_id ValidationError, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	if _, err := NewItemService(db).SetStatus(1, "vanished"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSetStatusAcceptsAnyAllowedStatus(t *testing.T) {
	// claimed -> found is deliberately allowed: there is no transition
	// graph check beyond membership in the status set.
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: selectItemPattern,
			columns: itemColumns,
			rows:    [][]driver.Value{itemRow(1, "Black iPhone", models.ItemStatusClaimed)},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE .items. SET .status.=\?`),
			result:  scriptedResult{rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	item, err := NewItemService(db).SetStatus(1, models.ItemStatusFound)
	if err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	if item.Status != models.ItemStatusFound {
		t.Fatalf("expected found, got %q", item.Status)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetMapsMissingRowToNotFound(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: selectItemPattern,
			columns: itemColumns,
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	if _, err := NewItemService(db).Get(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
