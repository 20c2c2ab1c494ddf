package bridge

import (
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"

	json "github.com/goccy/go-json"
)

// Data surface: whole-database export, import, and wipe, plus the two
// small filesystem reveals. The desktop app chose file paths through a
// native dialog; here the path arrives as the first argument, and an
// empty path is the cancelled outcome, reported as a failure message
// distinguishable from a real I/O fault.
func (s *Server) registerDataMethods() {
	s.register("data:export", func(args []json.RawMessage) (any, error) {
		path, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		if path == "" {
			return nil, errors.New("Export cancelled")
		}
		if _, err := s.store.ExportToFile(path); err != nil {
			return nil, err
		}
		return map[string]string{"filePath": path}, nil
	})
	s.register("data:import", func(args []json.RawMessage) (any, error) {
		path, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		if path == "" {
			return nil, errors.New("Import cancelled")
		}
		return nil, s.store.ImportFromFile(path)
	})
	s.register("data:clear", func(args []json.RawMessage) (any, error) {
		return nil, s.store.ClearData()
	})
	s.register("data:getPath", func(args []json.RawMessage) (any, error) {
		return s.store.Path(), nil
	})
	s.register("data:openFolder", func(args []json.RawMessage) (any, error) {
		return nil, openFolder(filepath.Dir(s.store.Path()))
	})
}

// openFolder reveals the directory in the platform file manager.
func openFolder(dir string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", dir)
	case "windows":
		cmd = exec.Command("explorer", dir)
	default:
		cmd = exec.Command("xdg-open", dir)
	}
	return cmd.Start()
}
