package launcher

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Process describes a child process to supervise
type Process struct {
	Name string
	Path string
	Args []string
	// Env holds extra KEY=VALUE entries appended to the parent environment
	Env []string
}

// Exit reports the termination of a supervised child
type Exit struct {
	Name string
	Err  error
}

type managedProcess struct {
	spec Process
	cmd  *exec.Cmd
	done chan error
}

// Supervisor starts and tears down the child processes of the application
type Supervisor struct {
	logger *zap.Logger
	grace  time.Duration
	procs  []*managedProcess
	exits  chan Exit
}

// NewSupervisor creates a new process supervisor
func NewSupervisor(logger *zap.Logger) *Supervisor {
	return &Supervisor{
		logger: logger,
		grace:  5 * time.Second,
		exits:  make(chan Exit, 8),
	}
}

// Start launches a child process. Its stdout and stderr are passed
// through to the launcher's own streams.
func (s *Supervisor) Start(spec Process) error {
	cmd := exec.Command(spec.Path, spec.Args...)
	cmd.Env = append(os.Environ(), spec.Env...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", spec.Name, err)
	}

	s.logger.Info("Started process",
		zap.String("name", spec.Name),
		zap.String("path", spec.Path),
		zap.Int("pid", cmd.Process.Pid),
	)

	proc := &managedProcess{
		spec: spec,
		cmd:  cmd,
		done: make(chan error, 1),
	}
	s.procs = append(s.procs, proc)

	go func() {
		err := cmd.Wait()
		proc.done <- err
		s.exits <- Exit{Name: spec.Name, Err: err}
	}()

	return nil
}

// Wait blocks until a child exits or the context is canceled. It returns
// the exit of the first child that terminated, or a zero Exit on cancel.
func (s *Supervisor) Wait(ctx context.Context) Exit {
	select {
	case <-ctx.Done():
		return Exit{}
	case exit := <-s.exits:
		return exit
	}
}

// StopAll terminates all children in reverse start order. Each child
// gets a SIGTERM and a grace period before it is killed.
func (s *Supervisor) StopAll() {
	for i := len(s.procs) - 1; i >= 0; i-- {
		s.stop(s.procs[i])
	}
	s.procs = nil
}

func (s *Supervisor) stop(proc *managedProcess) {
	if proc.cmd.Process == nil {
		return
	}

	select {
	case <-proc.done:
		// Already exited
		return
	default:
	}

	s.logger.Info("Stopping process", zap.String("name", proc.spec.Name))

	if err := proc.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		s.logger.Warn("Failed to signal process",
			zap.String("name", proc.spec.Name), zap.Error(err))
	}

	select {
	case <-proc.done:
	case <-time.After(s.grace):
		s.logger.Warn("Process did not stop gracefully, killing",
			zap.String("name", proc.spec.Name))
		_ = proc.cmd.Process.Kill()
		<-proc.done
	}
}

// WaitReady polls the given URL until it answers 200, the timeout
// elapses, or the context is canceled.
func WaitReady(ctx context.Context, url string, timeout time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.After(timeout)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return err
		}

		resp, err := client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return fmt.Errorf("%s not ready after %s", url, timeout)
		case <-ticker.C:
		}
	}
}
