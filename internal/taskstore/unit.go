package taskstore

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"mailtask/internal/task"
)

// Header comment keys stamped into generated unit files. The interval is
// read back on Get so the trigger can be reconstructed for the next-fire
// preview without asking systemd.
const (
	headerGenerated = "# Generated by mailtask. Do not edit."
	headerRegID     = "# Registration-ID: "
	headerInterval  = "# Interval-Minutes: "
)

// ServiceUnit returns the unit file name of the task's service.
func ServiceUnit(name string) string { return name + ".service" }

// TimerUnit returns the unit file name of the task's timer.
func TimerUnit(name string) string { return name + ".timer" }

func renderHeader(b *strings.Builder, spec task.Spec) {
	b.WriteString(headerGenerated + "\n")
	b.WriteString(headerRegID + spec.RegistrationID + "\n")
	b.WriteString(headerInterval + strconv.Itoa(spec.Trigger.IntervalMinutes()) + "\n\n")
}

// renderService renders the oneshot service unit carrying the action, the
// unattended execution account and the per-run wall-clock limit.
func renderService(spec task.Spec) string {
	var b strings.Builder
	renderHeader(&b, spec)

	b.WriteString("[Unit]\n")
	fmt.Fprintf(&b, "Description=%s\n", spec.Description)
	if !spec.Settings.AllowOnBattery {
		b.WriteString("ConditionACPower=true\n")
	}
	b.WriteString("\n[Service]\n")
	b.WriteString("Type=oneshot\n")
	fmt.Fprintf(&b, "ExecStart=%s\n", spec.Action.ExecutablePath)
	fmt.Fprintf(&b, "WorkingDirectory=%s\n", spec.Action.WorkingDirectory)
	fmt.Fprintf(&b, "User=%s\n", spec.Principal.User)
	fmt.Fprintf(&b, "RuntimeMaxSec=%d\n", int(spec.Settings.ExecutionTimeLimit.Seconds()))

	return b.String()
}

// renderTimer renders the timer unit carrying the trigger. Persistent=true
// runs a missed fire as soon as the host is able to.
func renderTimer(spec task.Spec) string {
	var b strings.Builder
	renderHeader(&b, spec)

	b.WriteString("[Unit]\n")
	fmt.Fprintf(&b, "Description=%s\n", spec.Description)
	b.WriteString("\n[Timer]\n")
	for _, line := range spec.Trigger.OnCalendar() {
		fmt.Fprintf(&b, "OnCalendar=%s\n", line)
	}
	if spec.Settings.StartWhenAvailable {
		b.WriteString("Persistent=true\n")
	}
	fmt.Fprintf(&b, "Unit=%s\n", ServiceUnit(spec.Name))
	b.WriteString("\n[Install]\n")
	b.WriteString("WantedBy=timers.target\n")

	return b.String()
}

// parseDescription extracts the Description= value from unit file text.
func parseDescription(data string) string {
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if v, ok := strings.CutPrefix(line, "Description="); ok {
			return v
		}
	}
	return ""
}

// parseIntervalMinutes extracts the stamped interval from unit file text.
func parseIntervalMinutes(data string) (int, bool) {
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if v, ok := strings.CutPrefix(line, headerInterval); ok {
			minutes, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return 0, false
			}
			return minutes, true
		}
	}
	return 0, false
}
