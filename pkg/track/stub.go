package track

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
)

//ReadStub loads a previously cached detector output. It returns nil without an
//error when the stub file does not exist, so callers can fall back to running
//the detector.
func ReadStub(stubPath string) (*Clip, error) {
	data, err := os.ReadFile(stubPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("ReadStub: Error, got '%v'", err)
	}

	clip := &Clip{}
	if err := json.Unmarshal(data, clip); err != nil {
		return nil, fmt.Errorf("ReadStub: Error, got '%v'", err)
	}

	return clip, nil
}

//SaveStub caches detector output so later runs on the same video skip the
//expensive inference. Parent directories are created as needed.
func SaveStub(stubPath string, clip *Clip) error {
	if err := os.MkdirAll(path.Dir(stubPath), 0766); err != nil {
		return fmt.Errorf("SaveStub: Error, got '%v'", err)
	}

	data, err := json.Marshal(clip)
	if err != nil {
		return fmt.Errorf("SaveStub: Error, got '%v'", err)
	}

	if err := os.WriteFile(stubPath, data, 0644); err != nil {
		return fmt.Errorf("SaveStub: Error, got '%v'", err)
	}

	return nil
}
