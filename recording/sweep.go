package recording

import (
	"database/sql"
	"fmt"
	"slices"

	"github.com/rs/xid"

	"na15/debug"
	"na15/types"
)

// Row is one steady-state point of a sweep.
type Row struct {
	RunID     string
	Voltage   float64
	Celsius   float64
	C1        float64
	C2        float64
	O1        float64
	I1        float64
	I2        float64
	Available float64
}

// NewRow builds a row from a solved point.
func NewRow(runID string, v, celsius float64, occ types.Occupancy) Row {
	return Row{
		RunID:     runID,
		Voltage:   v,
		Celsius:   celsius,
		C1:        occ[types.C1],
		C2:        occ[types.C2],
		O1:        occ[types.O1],
		I1:        occ[types.I1],
		I2:        occ[types.I2],
		Available: occ.Available(),
	}
}

// Occupancy returns the five occupancies of the row.
func (r Row) Occupancy() types.Occupancy {
	return types.Occupancy{r.C1, r.C2, r.O1, r.I1, r.I2}
}

// RecordSweep writes every point of the record into the table, creating the
// table on first use. An empty runID is replaced by a fresh xid, which is
// returned.
func RecordSweep(rec Recorder, tableName, runID string, list *debug.Record) (string, error) {
	if runID == "" {
		runID = xid.New().String()
	}

	if !slices.Contains(rec.ListTables(), tableName) {
		if err := rec.CreateTable(tableName, Row{}); err != nil {
			return "", err
		}
	}

	for i, v := range list.Voltage {
		row := NewRow(runID, v, list.Celsius, list.Occupancy[i])
		if err := rec.InsertData(tableName, row); err != nil {
			return "", err
		}
	}

	return runID, rec.Flush()
}

// ReadRows reads the rows of one run, ordered by insertion.
func ReadRows(db *sql.DB, tableName, runID string) ([]Row, error) {
	if !tableNameRe.MatchString(tableName) {
		return nil, fmt.Errorf("invalid table name %q", tableName)
	}

	rows, err := db.Query(`SELECT RunID, Voltage, Celsius, C1, C2, O1, I1, I2, Available FROM `+
		tableName+` WHERE RunID = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.RunID, &r.Voltage, &r.Celsius,
			&r.C1, &r.C2, &r.O1, &r.I1, &r.I2, &r.Available); err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}
