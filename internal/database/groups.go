package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrGroupNotFound is returned when looking up a group name that does
// not exist.
var ErrGroupNotFound = errors.New("light group not found")

// Group is a named set of lights identified by their serial numbers.
// Serials keep insertion order.
type Group struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Serials []string `json:"serials"`
}

// SaveGroup creates or replaces the group with the given name. The
// members of an existing group are replaced wholesale.
func (db *DB) SaveGroup(name string, serials []string) (Group, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return Group{}, fmt.Errorf("save group %s: %w", name, err)
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRow("SELECT id FROM light_groups WHERE name = ?", name).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		id = uuid.NewString()
		if _, err := tx.Exec("INSERT INTO light_groups (id, name) VALUES (?, ?)", id, name); err != nil {
			return Group{}, fmt.Errorf("save group %s: %w", name, err)
		}
	case err != nil:
		return Group{}, fmt.Errorf("save group %s: %w", name, err)
	default:
		if _, err := tx.Exec("DELETE FROM light_group_members WHERE group_id = ?", id); err != nil {
			return Group{}, fmt.Errorf("save group %s: %w", name, err)
		}
	}

	for i, serial := range serials {
		_, err := tx.Exec(
			"INSERT INTO light_group_members (group_id, serial_number, position) VALUES (?, ?, ?)",
			id, serial, i,
		)
		if err != nil {
			return Group{}, fmt.Errorf("save group %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Group{}, fmt.Errorf("save group %s: %w", name, err)
	}
	return Group{ID: id, Name: name, Serials: serials}, nil
}

// GetGroup returns the group with the given name, or ErrGroupNotFound.
func (db *DB) GetGroup(name string) (Group, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var g Group
	err := db.conn.QueryRow("SELECT id, name FROM light_groups WHERE name = ?", name).Scan(&g.ID, &g.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Group{}, ErrGroupNotFound
	}
	if err != nil {
		return Group{}, fmt.Errorf("get group %s: %w", name, err)
	}

	serials, err := db.groupMembers(g.ID)
	if err != nil {
		return Group{}, fmt.Errorf("get group %s: %w", name, err)
	}
	g.Serials = serials
	return g, nil
}

// ListGroups returns all groups ordered by name.
func (db *DB) ListGroups() ([]Group, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query("SELECT id, name FROM light_groups ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var groups []Group
	for rows.Next() {
		var g Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("list groups: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	for i := range groups {
		serials, err := db.groupMembers(groups[i].ID)
		if err != nil {
			return nil, fmt.Errorf("list groups: %w", err)
		}
		groups[i].Serials = serials
	}
	return groups, nil
}

// DeleteGroup removes the group with the given name, or returns
// ErrGroupNotFound.
func (db *DB) DeleteGroup(name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	var id string
	err := db.conn.QueryRow("SELECT id FROM light_groups WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrGroupNotFound
	}
	if err != nil {
		return fmt.Errorf("delete group %s: %w", name, err)
	}

	if _, err := db.conn.Exec("DELETE FROM light_group_members WHERE group_id = ?", id); err != nil {
		return fmt.Errorf("delete group %s: %w", name, err)
	}
	if _, err := db.conn.Exec("DELETE FROM light_groups WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete group %s: %w", name, err)
	}
	return nil
}

func (db *DB) groupMembers(groupID string) ([]string, error) {
	rows, err := db.conn.Query(
		"SELECT serial_number FROM light_group_members WHERE group_id = ? ORDER BY position",
		groupID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var serials []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		serials = append(serials, s)
	}
	return serials, rows.Err()
}
