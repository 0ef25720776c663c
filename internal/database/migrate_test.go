package database

import (
	"strings"
	"testing"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no migrations embedded")
	}

	// golang-migrate needs matching up/down pairs.
	var ups, downs int
	for _, entry := range entries {
		switch {
		case strings.HasSuffix(entry.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(entry.Name(), ".down.sql"):
			downs++
		default:
			t.Errorf("unexpected migration file %q", entry.Name())
		}
	}
	if ups != downs {
		t.Errorf("got %d up and %d down migrations, want matching pairs", ups, downs)
	}
}

func TestGroupMembersKeyScopedByGroup(t *testing.T) {
	data, err := migrationsFS.ReadFile("migrations/000001_init.up.sql")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	schema := string(data)
	start := strings.Index(schema, "CREATE TABLE group_members")
	if start < 0 {
		t.Fatal("group_members table missing from initial migration")
	}
	table := schema[start:]
	if end := strings.Index(table, ";"); end >= 0 {
		table = table[:end]
	}

	// Every group stores the app user under the same reserved id, so the key
	// must be scoped by group; a global primary key on id would reject the
	// self member of every group after the first.
	if !strings.Contains(table, "PRIMARY KEY (group_id, id)") {
		t.Errorf("group_members must use a composite (group_id, id) primary key:\n%s", table)
	}
	if strings.Contains(table, "id         TEXT PRIMARY KEY") {
		t.Errorf("group_members.id must not be a global primary key:\n%s", table)
	}
}
