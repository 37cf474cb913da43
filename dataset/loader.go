package dataset

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/archiver/extractor"
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
)

var archiveExtensions = []string{".zip", ".tgz", ".tar.gz"}

func IsArchive(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range archiveExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}

	return false
}

// LoadWordlistFile reads a wordlist from a plain text file, or from every
// regular file inside a zip or gzipped tarball.
func LoadWordlistFile(logger lager.Logger, path string) (Wordlist, error) {
	logger = logger.Session("load-wordlist", lager.Data{
		"path": path,
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	if !IsArchive(path) {
		return loadWordlistFromFiles(logger, path)
	}

	inflateDir, err := ioutil.TempDir("", "smartguard-wordlist")
	if err != nil {
		logger.Error("failed-to-create-temp-dir", err)
		return Wordlist{}, err
	}
	defer os.RemoveAll(inflateDir)

	err = extractor.NewDetectable().Extract(path, inflateDir)
	if err != nil {
		logger.Error("failed-to-extract", err)
		return Wordlist{}, err
	}

	var files []string
	err = filepath.Walk(inflateDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.Mode().IsRegular() {
			files = append(files, p)
		}

		return nil
	})
	if err != nil {
		logger.Error("failed-to-walk-archive", err)
		return Wordlist{}, err
	}

	return loadWordlistFromFiles(logger, files...)
}

func loadWordlistFromFiles(logger lager.Logger, paths ...string) (Wordlist, error) {
	w := NewWordlist()

	var result error
	for _, path := range paths {
		if err := readWordlistFile(w, path); err != nil {
			logger.Error("failed-to-read", err, lager.Data{"file": filepath.Base(path)})
			result = multierror.Append(result, err)
		}
	}

	if result != nil {
		return Wordlist{}, result
	}

	logger.Info("loaded", lager.Data{"words": w.Len()})

	return w, nil
}

func readWordlistFile(w Wordlist, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return w.read(f)
}
