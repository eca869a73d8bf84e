package internal

import (
	"encoding/json"
	"os"
)

// ReadPidFile parses the JSON array of pids stored at path. It returns a
// nil slice, no error, if the file does not exist.
func ReadPidFile(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var pids []int
	if err := json.Unmarshal(data, &pids); err != nil {
		return nil, err
	}
	return pids, nil
}

// WritePidFile persists pids as a JSON array at path, overwriting any
// existing file.
func WritePidFile(path string, pids []int) error {
	data, err := json.Marshal(pids)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// RemovePidFile deletes the pid file at path, tolerating its absence.
func RemovePidFile(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
