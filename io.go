package neuro

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Save writes the serialized Network to a file at the given path, creating any missing
// directories (with permissions 0700).
//
// If 'overwrite' is false and something already exists at the path, Save will return error.
func (net *Network) Save(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.Errorf("Can't save network, %s already exists, and overwrite is not enabled", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrapf(err, "Couldn't make directory to save network")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Can't save network, couldn't create file %s", path)
	}

	enc := json.NewEncoder(f)
	if err = enc.Encode(net.Marshal()); err != nil {
		f.Close()
		return errors.Wrapf(err, "Can't save network, failed to encode JSON to file")
	}

	return errors.Wrapf(f.Close(), "Can't save network, failed to close %s", path)
}

// Load restores a Network previously written by Save
func Load(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network")
	}
	defer f.Close()

	var r Record
	if err = json.NewDecoder(f).Decode(&r); err != nil {
		return nil, errors.Wrapf(err, "Can't load network, failed to decode JSON from %s", path)
	}

	net, err := Unmarshal(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network from %s", path)
	}

	return net, nil
}
