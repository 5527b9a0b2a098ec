package forge

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Forge materializes the classified file set under the staging root.
// Icons and the binary are copied byte-for-byte; every other artifact is
// copied line by line through the substitution pass. Roles are staged in
// a fixed order so repeated runs over unchanged inputs produce identical
// trees.
func (p *Project) Forge() error {
	for _, t := range p.Files.Types() {
		src, _ := p.Files.Path(t)
		if err := p.writeFile(t, src); err != nil {
			return err
		}
	}
	fmt.Fprintf(p.out, "Successfully imported %d files, and project binary\n", p.Files.Len()-1)
	return nil
}

// writeFile stages one artifact at its role's destination.
func (p *Project) writeFile(t FileType, src string) error {
	dir := filepath.Join(p.Vars.StagingRoot(), filepath.FromSlash(t.OutputDir(p.Vars.LinuxBinaryName)))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	dst := filepath.Join(dir, t.OutputName(p.Vars.LinuxBinaryName))

	if !t.IsText() {
		return copyFile(src, dst)
	}
	return p.substituteFile(src, dst)
}

// copyFile copies src to dst byte-for-byte, carrying over the source
// file mode so the staged binary stays executable.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stating %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}

// substituteFile copies src to dst as text, applying the replacement
// table to every line. Each output line ends with a single LF regardless
// of the source's line endings or missing final newline.
func (p *Project) substituteFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	rs := p.Vars.replacements()
	w := bufio.NewWriter(out)
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if _, err := w.WriteString(p.Vars.substitute(sc.Text(), rs)); err != nil {
			out.Close()
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			out.Close()
			return fmt.Errorf("writing %s: %w", dst, err)
		}
	}
	if err := sc.Err(); err != nil {
		out.Close()
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return out.Close()
}
