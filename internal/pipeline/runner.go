package pipeline

import (
	"os"
	"path/filepath"

	"github.com/jungleberrydev/comicRenamer/internal/archive"
	"github.com/jungleberrydev/comicRenamer/internal/config"
	"github.com/jungleberrydev/comicRenamer/internal/logging"
	"github.com/jungleberrydev/comicRenamer/internal/naming"
)

// Reserved subfolder names inside the target directory.
const (
	ErrorDirName      = "error"
	DuplicatesDirName = "possibleDuplicates"
)

// runDirs holds the resolved reserved paths for one run.
type runDirs struct {
	target     string
	errors     string
	duplicates string
}

// Run processes every comic file at the top level of cfg.TargetDir: plan the
// canonical name, move/rename into a per-title folder, route unparseable
// files to the error folder, and consult the archive oracle. Title folders
// flagged by the oracle are relocated into the possibleDuplicates folder in
// a single pass after the per-file loop.
func Run(cfg *config.Config, log *logging.Logger) Stats {
	var stats Stats

	dirs := runDirs{
		target:     cfg.TargetDir,
		errors:     filepath.Join(cfg.TargetDir, ErrorDirName),
		duplicates: filepath.Join(cfg.TargetDir, DuplicatesDirName),
	}
	if !cfg.DryRun {
		// Created eagerly so the error path is always available mid-run.
		if err := os.MkdirAll(dirs.errors, 0o755); err != nil {
			log.Warn("Cannot create %s folder: %v", ErrorDirName, err)
		}
		if err := os.MkdirAll(dirs.duplicates, 0o755); err != nil {
			log.Warn("Cannot create %s folder: %v", DuplicatesDirName, err)
		}
	}

	files, err := Discover(dirs.target)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}
	log.Info("Found %d comic files", len(files))

	oracle := archive.Oracle{Root: cfg.ExternalDir}

	// Title folders containing suspected duplicates, in discovery order.
	// The folder-level relocation is deferred until all files are processed.
	marked := make(map[string]bool)
	var markedOrder []string

	for _, name := range files {
		title, dup := processFile(cfg, log, oracle, dirs, name, &stats)
		if dup && !marked[title] {
			marked[title] = true
			markedOrder = append(markedOrder, title)
		}
	}

	relocateMarkedFolders(cfg, log, dirs, markedOrder)

	log.Info("Renamed: %d  Skipped: %d  Moved to error: %d  Possible duplicates: %d",
		stats.Renamed, stats.Skipped, stats.Errored, stats.Duplicates)
	return stats
}

// processFile handles one comic file: classify -> plan -> move -> duplicate
// check. It returns the plan's folder title and whether the oracle flagged
// the planned file as an archive duplicate.
func processFile(
	cfg *config.Config,
	log *logging.Logger,
	oracle archive.Oracle,
	dirs runDirs,
	name string,
	stats *Stats,
) (title string, dup bool) {
	ext := filepath.Ext(name)
	stem := name[:len(name)-len(ext)]
	src := filepath.Join(dirs.target, name)

	plan, ok := naming.PlanStem(stem)
	if !ok {
		moveToError(cfg, log, dirs, src, stem, ext)
		stats.Errored++
		stats.Unparseable = append(stats.Unparseable, name)
		return "", false
	}

	// Already canonical: leave in place.
	if stem == plan.CanonicalStem {
		stats.Skipped++
		if cfg.Verbose {
			log.Info("OK: %s", name)
		}
		return "", false
	}

	titleDir := filepath.Join(dirs.target, plan.FolderTitle)
	dest := filepath.Join(titleDir, plan.CanonicalStem+ext)
	if !cfg.DryRun {
		if err := os.MkdirAll(titleDir, 0o755); err != nil {
			redirectToError(cfg, log, dirs, src, stem, ext, name, stats, err)
			return "", false
		}
		dest = naming.UniqueDestination(titleDir, plan.CanonicalStem, ext)
	}

	if cfg.Verbose || cfg.DryRun {
		log.Info("Rename: %s -> %s", name, rel(dirs.target, dest))
	}

	if !cfg.DryRun {
		if err := os.Rename(src, dest); err != nil {
			redirectToError(cfg, log, dirs, src, stem, ext, name, stats, err)
			return "", false
		}
	}
	stats.Renamed++

	// Post-move advisory check against the external archive.
	if oracle.Root == "" {
		return "", false
	}
	desired := plan.CanonicalStem + ext
	if !oracle.IsDuplicate(plan.FolderTitle, desired) {
		if cfg.Verbose || cfg.DryRun {
			log.Debug("Not in archive: %s", filepath.Join(oracle.Root, plan.FolderTitle, desired))
		}
		return "", false
	}

	stats.Duplicates++
	stats.DuplicateFiles = append(stats.DuplicateFiles, name+" -> "+desired)
	if cfg.Verbose || cfg.DryRun {
		log.Warn("Duplicate: %s already in archive (%s)", desired,
			filepath.Join(oracle.Root, plan.FolderTitle, desired))
		log.Warn("  Folder %q will be moved to %s", plan.FolderTitle, DuplicatesDirName)
	}
	return plan.FolderTitle, true
}

// moveToError moves an unparseable file into the error folder under a
// collision-free name. A failed move is a last resort: the file stays in
// place and only the count reflects it.
func moveToError(cfg *config.Config, log *logging.Logger, dirs runDirs, src, stem, ext string) {
	dest := naming.UniqueDestination(dirs.errors, stem, ext)
	if cfg.Verbose || cfg.DryRun {
		log.Warn("Unparseable: %s -> %s", filepath.Base(src), rel(dirs.target, dest))
	}
	if !cfg.DryRun {
		if err := os.Rename(src, dest); err != nil {
			log.Warn("Could not move %s to %s folder: %v", filepath.Base(src), ErrorDirName, err)
		}
	}
}

// redirectToError handles a move failure for an otherwise-successfully
// planned file: the file is redirected to the error folder and counted as an
// error, never as a rename.
func redirectToError(
	cfg *config.Config,
	log *logging.Logger,
	dirs runDirs,
	src, stem, ext, name string,
	stats *Stats,
	cause error,
) {
	errDest := naming.UniqueDestination(dirs.errors, stem, ext)
	if cfg.Verbose {
		log.Error("Rename failed: %s (%v); moving to %s", name, cause, rel(dirs.target, errDest))
	}
	if err := os.Rename(src, errDest); err != nil {
		log.Warn("Could not move %s to %s folder: %v", name, ErrorDirName, err)
	}
	stats.Errored++
	stats.Unparseable = append(stats.Unparseable, name+" (rename failed)")
}

// relocateMarkedFolders moves every flagged title folder into the
// possibleDuplicates folder. An existing destination folder is merged
// file-by-file with collision suffixing; per-folder failures are logged when
// verbose and never abort the remaining folders.
func relocateMarkedFolders(cfg *config.Config, log *logging.Logger, dirs runDirs, titles []string) {
	for _, title := range titles {
		titleDir := filepath.Join(dirs.target, title)
		if fi, err := os.Stat(titleDir); err != nil || !fi.IsDir() {
			continue
		}
		dest := filepath.Join(dirs.duplicates, title)
		if cfg.Verbose || cfg.DryRun {
			log.Warn("Moving folder: %s -> %s (contains archive duplicates)",
				title, rel(dirs.target, dest))
		}
		if cfg.DryRun {
			continue
		}
		if err := relocateFolder(titleDir, dest); err != nil && cfg.Verbose {
			log.Warn("Could not move folder %s to %s: %v", title, DuplicatesDirName, err)
		}
	}
}

// relocateFolder moves src to dest, merging into a pre-existing destination
// by moving individual files and renaming on local name collision. The
// emptied source folder is removed when possible.
func relocateFolder(src, dest string) error {
	if _, err := os.Stat(dest); err != nil {
		return os.Rename(src, dest)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		target := filepath.Join(dest, name)
		if _, err := os.Stat(target); err == nil {
			ext := filepath.Ext(name)
			target = naming.UniqueDestination(dest, name[:len(name)-len(ext)], ext)
		}
		if err := os.Rename(filepath.Join(src, name), target); err != nil {
			return err
		}
	}
	// Fails if non-file entries remain; the folder is then left behind.
	_ = os.Remove(src)
	return nil
}

// rel returns path relative to base for log readability, falling back to the
// absolute path.
func rel(base, path string) string {
	r, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return r
}
