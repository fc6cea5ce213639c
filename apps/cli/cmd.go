package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/drukschool/bulletin/core"
	"github.com/drukschool/bulletin/core/about"
	"github.com/drukschool/bulletin/core/post"
	"github.com/drukschool/bulletin/core/user"
	"github.com/drukschool/bulletin/services/gateway"
	"github.com/drukschool/bulletin/ui"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errQuit = errors.New("quit")
)

// commandLine is an interactive shell around the controller. It keeps one
// gateway client alive for the whole run so the session cookie obtained by
// login is reused by every later command.
type commandLine struct {
	ctrl *ui.Controller
	in   *bufio.Scanner
	out  io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Commands:")
	fmt.Fprintln(cli.out, "  login USERNAME          - log in (password prompted)")
	fmt.Fprintln(cli.out, "  register                - create an account")
	fmt.Fprintln(cli.out, "  logout                  - end the session")
	fmt.Fprintln(cli.out, "  show SECTION            - open a section (home, articles, announcements, reminders, about, admin, profile)")
	fmt.Fprintln(cli.out, "  refresh                 - reload the active section")
	fmt.Fprintln(cli.out, "  post                    - create a post")
	fmt.Fprintln(cli.out, "  vote ID                 - vote for an article")
	fmt.Fprintln(cli.out, "  delete-user ID          - delete a user (admin)")
	fmt.Fprintln(cli.out, "  delete-post ID          - delete a post (admin)")
	fmt.Fprintln(cli.out, "  about-manage            - list about sections for editing (admin)")
	fmt.Fprintln(cli.out, "  about-new               - create an about section (admin)")
	fmt.Fprintln(cli.out, "  about-edit ID           - edit an about section (admin)")
	fmt.Fprintln(cli.out, "  about-delete ID         - delete an about section (admin)")
	fmt.Fprintln(cli.out, "  whoami                  - show the current identity")
	fmt.Fprintln(cli.out, "  quit")
}

func (cli *commandLine) run(ctx context.Context) error {
	model, err := cli.ctrl.Start(ctx)
	if err != nil {
		cli.printErr(err)
	} else {
		cli.printModel(model)
	}

	for {
		fmt.Fprint(cli.out, "> ")
		if !cli.in.Scan() {
			return cli.in.Err()
		}
		fields := strings.Fields(cli.in.Text())
		if len(fields) == 0 {
			continue
		}
		if err := cli.dispatch(ctx, fields); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			cli.printErr(err)
		}
	}
}

func (cli *commandLine) dispatch(ctx context.Context, fields []string) error {
	switch fields[0] {
	case "login":
		if len(fields) < 2 {
			return errors.New("usage: login USERNAME")
		}
		return cli.login(ctx, fields[1])
	case "register":
		return cli.register(ctx)
	case "logout":
		models, err := cli.ctrl.Logout(ctx)
		cli.printModels(models)
		return err
	case "show":
		if len(fields) < 2 {
			return errors.New("usage: show SECTION")
		}
		model, err := cli.ctrl.Router().GoTo(ctx, ui.Section(fields[1]))
		if err != nil {
			return err
		}
		cli.printModel(model)
		return nil
	case "refresh":
		model, err := cli.ctrl.Router().Refresh(ctx)
		if err != nil {
			return err
		}
		cli.printModel(model)
		return nil
	case "post":
		return cli.createPost(ctx)
	case "vote":
		return cli.withID(ctx, fields, cli.ctrl.VoteOnPost)
	case "delete-user":
		return cli.withID(ctx, fields, cli.ctrl.DeleteUser)
	case "delete-post":
		return cli.withID(ctx, fields, cli.ctrl.DeletePost)
	case "about-manage":
		model, err := cli.ctrl.AboutManagement(ctx)
		if err != nil {
			return err
		}
		cli.printModel(*model)
		return nil
	case "about-new":
		return cli.createAboutSection(ctx)
	case "about-edit":
		return cli.editAboutSection(ctx, fields)
	case "about-delete":
		return cli.withID(ctx, fields, cli.ctrl.DeleteAboutSection)
	case "whoami":
		cli.whoami()
		return nil
	case "help":
		cli.printUsage()
		return nil
	case "quit", "exit":
		return errQuit
	default:
		cli.printUsage()
		return nil
	}
}

func (cli *commandLine) login(ctx context.Context, uname string) error {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return err
	}
	models, err := cli.ctrl.Login(ctx, user.Credentials{Username: uname, Password: string(pwd)})
	cli.printModels(models)
	return err
}

func (cli *commandLine) register(ctx context.Context) error {
	reg := user.Registration{
		FirstName:  cli.prompt("First name: "),
		LastName:   cli.prompt("Last name: "),
		Username:   cli.prompt("Username: "),
		Email:      cli.prompt("Email: "),
		Role:       cli.prompt("Role (student/parent/teacher/language_teacher): "),
		GradeLevel: cli.prompt("Grade level (junior/middle/senior): "),
	}
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return err
	}
	reg.Password = string(pwd)
	if err := cli.ctrl.Register(ctx, reg); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Account created, you can now login.")
	return nil
}

func (cli *commandLine) createPost(ctx context.Context) error {
	np := post.NewPost{
		Title:      cli.prompt("Title: "),
		Content:    cli.prompt("Content: "),
		PostType:   cli.prompt("Type (article/announcement/reminder/principal_note): "),
		GradeLevel: cli.prompt("Grade level (all/junior/middle/senior): "),
	}
	if np.PostType == post.TypeAnnouncement {
		if raw := cli.prompt("Expires at (YYYY-MM-DD, blank for none): "); raw != "" {
			t, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return errors.New("invalid date, expected YYYY-MM-DD")
			}
			np.ExpiresAt = &t
		}
	}
	models, err := cli.ctrl.CreatePost(ctx, np)
	cli.printModels(models)
	return err
}

func (cli *commandLine) createAboutSection(ctx context.Context) error {
	ns := about.NewSection{
		SectionName: cli.prompt("Section name: "),
		Title:       cli.prompt("Title: "),
		Content:     cli.prompt("Content (markdown): "),
		IsActive:    strings.EqualFold(cli.prompt("Active? (y/N): "), "y"),
	}
	ns.DisplayOrder, _ = strconv.Atoi(cli.prompt("Display order: "))
	models, err := cli.ctrl.CreateAboutSection(ctx, ns)
	cli.printModels(models)
	return err
}

func (cli *commandLine) editAboutSection(ctx context.Context, fields []string) error {
	if len(fields) < 2 {
		return errors.New("usage: about-edit ID")
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return errors.New("usage: about-edit ID")
	}
	us := about.UpdateSection{
		Title:    cli.prompt("Title: "),
		Content:  cli.prompt("Content (markdown): "),
		IsActive: strings.EqualFold(cli.prompt("Active? (y/N): "), "y"),
	}
	us.DisplayOrder, _ = strconv.Atoi(cli.prompt("Display order: "))
	models, err := cli.ctrl.UpdateAboutSection(ctx, id, us)
	cli.printModels(models)
	return err
}

func (cli *commandLine) withID(ctx context.Context, fields []string, cmd func(context.Context, int) ([]ui.RenderModel, error)) error {
	if len(fields) < 2 {
		return fmt.Errorf("usage: %s ID", fields[0])
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("usage: %s ID", fields[0])
	}
	models, err := cmd(ctx, id)
	cli.printModels(models)
	return err
}

func (cli *commandLine) whoami() {
	usr := cli.ctrl.Store().Current()
	if !usr.IsAuthenticated() {
		fmt.Fprintln(cli.out, "Not logged in.")
		return
	}
	fmt.Fprintf(cli.out, "%s (%s, %s, %s)\n", usr.FullName(), usr.Username, usr.Role, usr.GradeLevel)
}

func (cli *commandLine) prompt(label string) string {
	fmt.Fprint(cli.out, label)
	if !cli.in.Scan() {
		return ""
	}
	return strings.TrimSpace(cli.in.Text())
}

func (cli *commandLine) printErr(err error) {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		fmt.Fprintln(cli.out, "Please correct the fields below.")
		for field, msg := range vErr.FieldMap() {
			fmt.Fprintf(cli.out, "  %s: %s\n", field, msg)
		}
		return
	}
	fmt.Fprintln(cli.out, gateway.UserMessage(err, "Something went wrong. Please try again."))
}

// confirmer answers mutation confirmations from the same input stream.
type confirmer struct {
	in  *bufio.Scanner
	out io.Writer
}

func (c *confirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	if !c.in.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(c.in.Text()), "y")
}
