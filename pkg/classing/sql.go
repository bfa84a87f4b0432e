package classing

import (
	"database/sql"

	"github.com/MagicAardvark/race-results-sub000/pkg/model"
)

func buildCreateClassesTable() string {
	return `CREATE TABLE IF NOT EXISTS classes (
		shortname TEXT PRIMARY KEY,
		classid TEXT NOT NULL,
		longname TEXT NOT NULL,
		indexvalue REAL NOT NULL,
		groupid INTEGER,
		groupshortname TEXT,
		grouplongname TEXT);`
}

func buildSelectClassesCommand() (string, func(*sql.Rows) (model.ClassConfig, error)) {
	fields := "shortname, classid, longname, indexvalue, groupid, groupshortname, grouplongname"
	return `SELECT ` + fields + ` FROM classes`, processSelectClassesRows
}

func processSelectClassesRows(rows *sql.Rows) (model.ClassConfig, error) {
	defer rows.Close()

	classes := model.ClassConfig{}
	for rows.Next() {
		var info model.ClassInfo
		var groupID sql.NullInt64
		var groupShort, groupLong sql.NullString
		err := rows.Scan(&info.ShortName, &info.ClassID, &info.LongName, &info.IndexValue, &groupID, &groupShort, &groupLong)
		if err != nil {
			return classes, err
		}
		if groupID.Valid {
			id := groupID.Int64
			info.ClassGroupID = &id
		}
		info.GroupShortName = groupShort.String
		info.GroupLongName = groupLong.String
		classes[info.ShortName] = info
	}
	return classes, rows.Err()
}

func buildInsertClassCommand() string {
	fields := "shortname, classid, longname, indexvalue, groupid, groupshortname, grouplongname"
	return `INSERT INTO classes (` + fields + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
}

func buildUpdateClassCommand() string {
	return `UPDATE classes SET classid = ?, longname = ?, indexvalue = ?, groupid = ?, groupshortname = ?, grouplongname = ? WHERE shortname = ?`
}

func buildDeleteClassCommand() string {
	return `DELETE FROM classes WHERE shortname = ?`
}

func buildCountClassCommand() string {
	return `SELECT COUNT(*) FROM classes WHERE shortname = ?`
}
