package forge

import "strings"

// FileType classifies a packaging artifact by its role in the staged
// Debian tree. The vocabulary is closed: the Debian source-package
// layout itself is a fixed set of files, so the roles and their output
// rules form a compile-time-known table rather than an open registry.
type FileType int

const (
	// Required roles. A run cannot proceed to staging without all four;
	// Binary is added synthetically from the resolved build output path.

	Control FileType = iota
	Changelog
	Copyright
	Binary

	// Optional roles.

	Icon64
	Icon128
	Icon256
	Icon512
	Desktop
	Install
	PreInst
	PostInst
	PreRm
	PostRm
	ConfFiles
	Watch
	Format
	Dirs
	Docs
	Menu
	ManPages
)

// iconFormats is the set of image extensions eligible for icon
// classification.
var iconFormats = []string{"png", "jpg", "jpeg", "tiff", "svg"}

// icons lists the icon roles in descending resolution order. Width
// tokens are matched by substring containment, so a filename like
// "icon64128.png" contains more than one token; checking larger widths
// first makes the match deterministic and keeps a longer token from
// being shadowed by a shorter one.
var icons = []FileType{Icon512, Icon256, Icon128, Icon64}

// reservedNames maps the extensionless basenames recognized inside
// project subdirectories to their roles.
var reservedNames = map[string]FileType{
	"control":   Control,
	"changelog": Changelog,
	"copyright": Copyright,
	"install":   Install,
	"preinst":   PreInst,
	"postinst":  PostInst,
	"prerm":     PreRm,
	"postrm":    PostRm,
	"conffiles": ConfFiles,
	"watch":     Watch,
	"format":    Format,
	"dirs":      Dirs,
	"docs":      Docs,
	"desktop":   Desktop,
	"menu":      Menu,
	"manpages":  ManPages,
}

// Classify returns the packaging role of a filename, if it has one.
// Pure and deterministic; unclassified files are not an error, they are
// simply not part of the package. Rules, in order:
//
//  1. extension "desktop" → Desktop
//  2. a known image extension → the icon role whose decimal width token
//     appears in the name (largest width first); no token, no role
//  3. any other extension → no role
//  4. no extension → exact match against the reserved basename table
func Classify(name string) (FileType, bool) {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		ext := name[i+1:]
		if ext == "desktop" {
			return Desktop, true
		}
		for _, format := range iconFormats {
			if ext != format {
				continue
			}
			for _, icon := range icons {
				if strings.Contains(name, icon.width()) {
					return icon, true
				}
			}
			return 0, false
		}
		return 0, false
	}
	t, ok := reservedNames[name]
	return t, ok
}

// IsText reports whether the artifact is textual and therefore subject
// to variable substitution. Only icons and the binary are copied
// verbatim.
func (t FileType) IsText() bool {
	switch t {
	case Icon64, Icon128, Icon256, Icon512, Binary:
		return false
	}
	return true
}

// width returns the decimal pixel-width token of an icon role.
func (t FileType) width() string {
	switch t {
	case Icon64:
		return "64"
	case Icon128:
		return "128"
	case Icon256:
		return "256"
	case Icon512:
		return "512"
	}
	panic("forge: only icons have widths")
}

// resolution returns the WxW directory token of an icon role.
func (t FileType) resolution() string {
	return t.width() + "x" + t.width()
}

// OutputName returns the filename the artifact takes in the staged tree.
// Icons and the desktop entry are named after the Linux-normalized
// binary name; everything else uses the fixed conventional Debian name.
func (t FileType) OutputName(linuxName string) string {
	switch t {
	case Control:
		return "control"
	case Changelog:
		return "changelog"
	case Copyright:
		return "copyright"
	case Binary:
		return linuxName
	case Icon64, Icon128, Icon256, Icon512:
		return linuxName + ".png"
	case Desktop:
		return linuxName + ".desktop"
	case Install:
		return "install"
	case PreInst:
		return "preinst"
	case PostInst:
		return "postinst"
	case PreRm:
		return "prerm"
	case PostRm:
		return "postrm"
	case ConfFiles:
		return "conffiles"
	case Watch:
		return "watch"
	case Format:
		return "format"
	case Dirs:
		return "dirs"
	case Docs:
		return "docs"
	case Menu:
		return "menu"
	case ManPages:
		return "manpages"
	}
	panic("forge: unknown file type")
}

// OutputDir returns the artifact's destination subdirectory relative to
// the staging root. The layout is the externally visible contract and
// must match exactly for downstream Debian tooling to consume it.
func (t FileType) OutputDir(linuxName string) string {
	switch t {
	case Changelog, Copyright:
		return "usr/share/doc/" + linuxName
	case Icon64, Icon128, Icon256, Icon512:
		return "usr/share/icons/hicolor/" + t.resolution() + "/apps"
	case Binary:
		return "usr/local/bin"
	case Desktop:
		return "usr/share/applications"
	case Format:
		return "DEBIAN/source"
	default:
		return "DEBIAN"
	}
}

// String returns the role name as used in progress and error messages.
func (t FileType) String() string {
	switch t {
	case Control:
		return "Control"
	case Changelog:
		return "Changelog"
	case Copyright:
		return "Copyright"
	case Binary:
		return "Binary"
	case Icon64:
		return "Icon64"
	case Icon128:
		return "Icon128"
	case Icon256:
		return "Icon256"
	case Icon512:
		return "Icon512"
	case Desktop:
		return "Desktop"
	case Install:
		return "Install"
	case PreInst:
		return "PreInst"
	case PostInst:
		return "PostInst"
	case PreRm:
		return "PreRm"
	case PostRm:
		return "PostRm"
	case ConfFiles:
		return "ConfFiles"
	case Watch:
		return "Watch"
	case Format:
		return "Format"
	case Dirs:
		return "Dirs"
	case Docs:
		return "Docs"
	case Menu:
		return "Menu"
	case ManPages:
		return "ManPages"
	}
	return "Unknown"
}
