package sshkit

import (
	"bytes"
	"fmt"

	"golang.org/x/crypto/ssh"

	"gpufleet/internal/errors"
)

// Run executes a command on the remote host and returns its stdout and exit
// code. A *ssh.ExitError maps to a nonzero exit code with a nil error; any
// other failure (channel open refused, connection torn down) is returned as
// an error and means the connection is no longer usable for polling.
func (c *Client) Run(cmd string) (stdout string, exitCode int, err error) {
	session, err := c.Client.NewSession()
	if err != nil {
		return "", -1, errors.WrapWithCode(err, errors.ErrSSH,
			"Failed to create SSH session",
			"Connection may have been closed.")
	}
	defer session.Close()

	var stdoutBuf bytes.Buffer
	session.Stdout = &stdoutBuf

	err = session.Run(cmd)
	if err != nil {
		if exitErr, ok := err.(*ssh.ExitError); ok {
			// Command ran but failed; the session is still healthy.
			return stdoutBuf.String(), exitErr.ExitStatus(), nil
		}
		return "", -1, errors.WrapWithCode(err, errors.ErrExec,
			fmt.Sprintf("Failed to execute command: %s", cmd),
			"Check if the command exists on the remote host.")
	}

	return stdoutBuf.String(), 0, nil
}
