package prefixcalc

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/prefixcalc/statik"
)

//go:generate statik -src=samples

const sampleExt = ".pc"

// Samples lists the bundled sample programs by name.
func Samples() ([]string, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != sampleExt {
			continue
		}
		names = append(names, strings.TrimSuffix(fi.Name(), sampleExt))
	}
	sort.Strings(names)
	return names, nil
}

func LoadSample(name string) (string, error) {
	statikFS, err := fs.New()
	if err != nil {
		return "", err
	}
	f, err := statikFS.Open(path.Join("/", name+sampleExt))
	if err != nil {
		return "", fmt.Errorf("sample %q: %w", name, os.ErrNotExist)
	}
	defer f.Close()

	b, err := ioutil.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("sample %q: %w", name, err)
	}
	return string(b), nil
}
