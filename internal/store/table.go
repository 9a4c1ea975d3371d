// Package store implements the flat-file persistence layer: a generic CSV
// row store with atomic overwrite semantics, a scan-based id allocator with a
// side-car counter file, and typed repositories for the four registry tables.
//
// Every read is a full re-scan of the backing file; there is no caching and
// no index. The layer is safe for a single process with a single writer only.
package store

// Table describes one logical table: its name, the backing file name inside
// the data directory, and the fixed, ordered column set.
//
// Table definitions are explicit values handed to the repositories at
// construction time rather than ambient globals, so tests can point them at
// throwaway directories.
type Table struct {
	Name     string
	FileName string
	Columns  []string
}

// HasColumn reports whether name is one of the table's declared columns.
func (t Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// The four registry tables. Column order is the on-disk header order and
// must not change: existing files depend on it.
var (
	CitizensTable = Table{
		Name:     "citizens",
		FileName: "citizens_data.csv",
		Columns: []string{
			"id", "national_id", "full_name", "date_of_birth", "phone_number",
			"address", "household_members", "dependents", "needs_description",
			"priority_score", "is_active", "registration_date", "secret_code_hash",
		},
	}

	AdminsTable = Table{
		Name:     "admins",
		FileName: "admins_data.csv",
		Columns: []string{
			"id", "username", "password_hash", "full_name", "organization_id", "role",
		},
	}

	AidHistoryTable = Table{
		Name:     "aid_history",
		FileName: "aid_history.csv",
		Columns: []string{
			"id", "citizen_internal_id", "entry_type", "date", "next_date", "timestamp",
		},
	}

	MessagesTable = Table{
		Name:     "messages",
		FileName: "messages.csv",
		Columns: []string{
			"id", "citizen_internal_id", "message", "timestamp",
		},
	}
)
