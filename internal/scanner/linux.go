//go:build linux

package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sys/unix"

	"github.com/productdevbook/fdinspect/cli/internal/column"
	"github.com/productdevbook/fdinspect/cli/internal/fdfile"
)

const procDir = "/proc"

type linuxScanner struct{}

func newPlatformScanner() Scanner {
	return &linuxScanner{}
}

// Scan walks every selected process. Each descriptor is built, rendered and
// released before the next one is read.
func (s *linuxScanner) Scan(opts Options) ([]Row, error) {
	cols := columnsOrDefault(opts.Columns)

	procs, err := s.processes(opts.PIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	var rows []Row
	for _, p := range procs {
		proc := describe(p)
		rows = append(rows, s.scanDescriptors(proc, cols, opts.SocketsOnly)...)
		if opts.IncludeMaps {
			rows = append(rows, s.scanMaps(proc, cols, opts.SocketsOnly)...)
		}
	}

	return rows, nil
}

func (s *linuxScanner) processes(pids []int) ([]*process.Process, error) {
	if len(pids) == 0 {
		return process.Processes()
	}

	var procs []*process.Process
	for _, pid := range pids {
		p, err := process.NewProcess(int32(pid))
		if err != nil {
			log.Warn("process not found", "pid", pid, "error", err)
			continue
		}
		procs = append(procs, p)
	}
	return procs, nil
}

func describe(p *process.Process) *fdfile.Process {
	proc := &fdfile.Process{PID: int(p.Pid)}
	if name, err := p.Name(); err == nil {
		proc.Command = name
	}
	if user, err := p.Username(); err == nil {
		proc.User = user
	} else if uids, err := p.Uids(); err == nil && len(uids) > 0 {
		proc.User = strconv.Itoa(int(uids[0]))
	}
	return proc
}

func (s *linuxScanner) scanDescriptors(proc *fdfile.Process, cols []column.ID, socketsOnly bool) []Row {
	fdDir := filepath.Join(procDir, strconv.Itoa(proc.PID), "fd")
	entries, err := os.ReadDir(fdDir)
	if err != nil {
		// exited, or not ours to look at
		log.Debug("skipping process", "pid", proc.PID, "error", err)
		return nil
	}

	fds := make([]int, 0, len(entries))
	for _, e := range entries {
		fd, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		fds = append(fds, fd)
	}
	sort.Ints(fds)

	var rows []Row
	for _, fd := range fds {
		path := filepath.Join(fdDir, strconv.Itoa(fd))

		name, err := os.Readlink(path)
		if err != nil {
			log.Debug("skipping descriptor", "pid", proc.PID, "fd", fd, "error", err)
			continue
		}
		var st unix.Stat_t
		if err := unix.Stat(path, &st); err != nil {
			log.Debug("skipping descriptor", "pid", proc.PID, "fd", fd, "error", err)
			continue
		}

		snap := snapshot(&st)
		kind := fdfile.KindFromMode(snap.Mode)
		if socketsOnly && kind != fdfile.KindSock {
			continue
		}

		f := fdfile.FactoryFor(kind)(nil, snap, name, nil, fd, proc)
		rows = append(rows, renderRow(proc, f, cols))
	}

	return rows
}

func (s *linuxScanner) scanMaps(proc *fdfile.Process, cols []column.ID, socketsOnly bool) []Row {
	fh, err := os.Open(filepath.Join(procDir, strconv.Itoa(proc.PID), "maps"))
	if err != nil {
		log.Debug("skipping maps", "pid", proc.PID, "error", err)
		return nil
	}
	defer fh.Close()

	entries, err := parseMaps(fh)
	if err != nil {
		log.Debug("partial maps", "pid", proc.PID, "error", err)
	}

	var rows []Row
	for _, e := range entries {
		snap := e.stat
		var st unix.Stat_t
		if err := unix.Stat(e.path, &st); err == nil && st.Ino == e.stat.Inode {
			snap = snapshot(&st)
		}

		kind := fdfile.KindFromMode(snap.Mode)
		if socketsOnly && kind != fdfile.KindSock {
			continue
		}

		data := e.data
		f := fdfile.FactoryFor(kind)(nil, snap, e.path, &data, -1, proc)
		rows = append(rows, renderRow(proc, f, cols))
	}

	return rows
}

func snapshot(st *unix.Stat_t) fdfile.Stat {
	dev := uint64(st.Dev)
	return fdfile.Stat{
		DevMajor: unix.Major(dev),
		DevMinor: unix.Minor(dev),
		Inode:    uint64(st.Ino),
		Mode:     st.Mode,
		Size:     st.Size,
	}
}
