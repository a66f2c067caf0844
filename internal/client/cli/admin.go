package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/quarkpapers/quark/internal/client/authz"
	"github.com/quarkpapers/quark/internal/client/bulk"
	"github.com/quarkpapers/quark/internal/client/models"
)

func (a *App) requireAdmin() bool {
	if authz.CanAccess(a.holder.Identity(), models.RoleAdmin) {
		return true
	}
	printlnFn("Admin access required.")
	return false
}

// Users lists all accounts.
func (a *App) Users(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}
	users, err := a.adminService.Users(ctx)
	if err != nil {
		printlnFn("Could not list users:", err)
		return err
	}
	for _, u := range users {
		line := fmt.Sprintf("%s  %s <%s>  %s", u.ID, u.Username, u.Email, u.Role)
		if u.Section != "" {
			line += "  section=" + u.Section
		}
		printlnFn(line)
	}
	return nil
}

// AssignRole promotes or demotes one account.
func (a *App) AssignRole(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}
	userID, err := GetSimpleText(a.reader, "User ID", os.Stdout)
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.reader, "New role (student/teacher/admin)", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.adminService.AssignRole(ctx, userID, models.Role(role)); err != nil {
		printlnFn("Could not assign role:", err)
		return err
	}
	printlnFn("Role updated.")
	return nil
}

// BulkUsers registers accounts from a CSV file. Rows that fail validation
// are reported line by line and skipped; valid rows are submitted in one
// call.
func (a *App) BulkUsers(ctx context.Context, args []string) error {
	if !a.requireAdmin() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: bulk-users <file.csv>")
		return nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		printlnFn("Could not open file:", err)
		return err
	}
	defer f.Close()

	result, issues, err := a.adminService.BulkRegisterCSV(ctx, f)
	for _, issue := range issues {
		printlnFn(fmt.Sprintf("line %d: %v", issue.Line, issue.Err))
	}
	if err != nil {
		printlnFn("Bulk register failed:", err)
		return err
	}
	printlnFn(fmt.Sprintf("Registered %d users, %d failed.", result.Successful, result.Failed))
	return nil
}

// Logs prints the audit feed.
func (a *App) Logs(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}
	entries, err := a.adminService.Logs(ctx)
	if err != nil {
		printlnFn("Could not fetch logs:", err)
		return err
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %s  %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Username, e.Action)
		if e.Details != "" {
			line += "  " + e.Details
		}
		printlnFn(line)
	}
	return nil
}

// Academic manages the academic reference data. Subcommands:
//
//	departments | subjects | sections     list records
//	courses <subjectID>                   list courses under a subject
//	add-department | add-subject | add-course | add-section
//	batch-courses                         add many course codes at once
func (a *App) Academic(ctx context.Context, args []string) error {
	if !a.requireAdmin() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: academic <departments|subjects|courses <subjectID>|sections|add-department|add-subject|add-course|add-section|batch-courses>")
		return nil
	}

	switch args[0] {
	case "departments":
		items, err := a.adminService.Departments(ctx)
		if err != nil {
			printlnFn("Error:", err)
			return err
		}
		for _, d := range items {
			printlnFn(fmt.Sprintf("%s  %s", d.ID, d.Name))
		}

	case "subjects":
		items, err := a.adminService.Subjects(ctx)
		if err != nil {
			printlnFn("Error:", err)
			return err
		}
		for _, s := range items {
			printlnFn(fmt.Sprintf("%s  %s (dept %s)", s.ID, s.Name, s.Department.Name))
		}

	case "courses":
		if len(args) < 2 {
			printlnFn("Usage: academic courses <subjectID>")
			return nil
		}
		items, err := a.adminService.Courses(ctx, args[1])
		if err != nil {
			printlnFn("Error:", err)
			return err
		}
		for _, c := range items {
			printlnFn(fmt.Sprintf("%s  %s", c.ID, c.Name))
		}

	case "sections":
		items, err := a.adminService.Sections(ctx)
		if err != nil {
			printlnFn("Error:", err)
			return err
		}
		for _, s := range items {
			printlnFn(fmt.Sprintf("%s  %s (%d students)", s.ID, s.Name, len(s.Students)))
		}

	case "add-department":
		name, err := GetSimpleText(a.reader, "Department name", os.Stdout)
		if err != nil {
			return err
		}
		return a.reportAdd(a.adminService.AddDepartment(ctx, name))

	case "add-subject":
		name, err := GetSimpleText(a.reader, "Subject name", os.Stdout)
		if err != nil {
			return err
		}
		deptID, err := GetSimpleText(a.reader, "Department ID", os.Stdout)
		if err != nil {
			return err
		}
		return a.reportAdd(a.adminService.AddSubject(ctx, name, deptID))

	case "add-course":
		name, err := GetSimpleText(a.reader, "Course code", os.Stdout)
		if err != nil {
			return err
		}
		subjectID, err := GetSimpleText(a.reader, "Subject ID", os.Stdout)
		if err != nil {
			return err
		}
		return a.reportAdd(a.adminService.AddCourse(ctx, name, subjectID))

	case "add-section":
		name, err := GetSimpleText(a.reader, "Section name", os.Stdout)
		if err != nil {
			return err
		}
		studentsRaw, err := GetSimpleText(a.reader, "Student IDs (comma separated, empty for none)", os.Stdout)
		if err != nil {
			return err
		}
		var students []string
		for _, s := range strings.Split(studentsRaw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				students = append(students, s)
			}
		}
		return a.reportAdd(a.adminService.AddSection(ctx, name, students))

	case "batch-courses":
		subjectID, err := GetSimpleText(a.reader, "Subject ID", os.Stdout)
		if err != nil {
			return err
		}
		codesRaw, err := GetSimpleText(a.reader, "Course codes (comma separated)", os.Stdout)
		if err != nil {
			return err
		}
		entries, err := bulk.BuildCourseEntries(subjectID, strings.Split(codesRaw, ","))
		if err != nil {
			printlnFn(err)
			return err
		}
		result, err := a.adminService.SubmitCourseBatch(ctx, entries)
		if err != nil {
			printlnFn("Batch failed:", err)
			return err
		}
		for _, failure := range result.Failures {
			printlnFn("  " + failure)
		}
		printlnFn(fmt.Sprintf("Added %d courses, %d failed.", result.Successful, result.Failed))

	default:
		printlnFn("Unknown academic subcommand:", args[0])
	}
	return nil
}

func (a *App) reportAdd(err error) error {
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	printlnFn("Added.")
	return nil
}
