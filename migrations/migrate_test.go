// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: goose's first query must fail

	err = Migrate(context.Background(), db, "pgx")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, "sqlite3")
	if !errors.Is(err, ErrNilDB) {
		t.Errorf("expected ErrNilDB, got: %v", err)
	}
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(context.Background(), db, "mysql")
	if !errors.Is(err, ErrUnsupportedDriver) {
		t.Errorf("expected ErrUnsupportedDriver, got: %v", err)
	}
}

func TestEmbeddedMigrations_MatchAcrossDrivers(t *testing.T) {
	names := func(dir string) []string {
		entries, err := fs.ReadDir(embedMigrations, dir)
		if err != nil {
			t.Fatalf("read %s: %v", dir, err)
		}
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.Name())
		}
		return out
	}

	pg, lite := names("postgres"), names("sqlite")
	if len(pg) == 0 {
		t.Fatal("no postgres migrations embedded")
	}
	if strings.Join(pg, ",") != strings.Join(lite, ",") {
		t.Errorf("migration sets differ: postgres=%v sqlite=%v", pg, lite)
	}

	for _, dir := range []string{"postgres", "sqlite"} {
		for _, name := range names(dir) {
			body, err := fs.ReadFile(embedMigrations, dir+"/"+name)
			if err != nil {
				t.Fatalf("read %s/%s: %v", dir, name, err)
			}
			if !strings.Contains(string(body), "-- +goose Up") || !strings.Contains(string(body), "-- +goose Down") {
				t.Errorf("%s/%s lacks goose annotations", dir, name)
			}
		}
	}
}
