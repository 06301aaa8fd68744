// Package console is the line-oriented front end of the terminal: it
// prints the menu, reads one command per iteration, collects the
// operation's inputs, and hands the work to the engine. It owns no
// banking rules of its own.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/shared"
	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/engine"
)

var errInputClosed = errors.New("input stream closed")

// Console drives one operator's command loop. The reader and writer
// are injected so a scripted input file replays exactly like an
// interactive session.
type Console struct {
	logger *slog.Logger
	eng    *engine.Engine
	in     *bufio.Scanner
	out    io.Writer

	header func(a ...interface{}) string
	fail   func(a ...interface{}) string
	ok     func(a ...interface{}) string
}

func New(logger *slog.Logger, eng *engine.Engine, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger,
		eng:    eng,
		in:     bufio.NewScanner(in),
		out:    out,
		header: color.New(color.FgCyan, color.Bold).SprintFunc(),
		fail:   color.New(color.FgRed).SprintFunc(),
		ok:     color.New(color.FgGreen).SprintFunc(),
	}
}

// Run loops until the input is exhausted or the operator exits. An
// exit with an open session logs the session out first so its records
// reach the transaction log.
func (c *Console) Run() error {
	c.println(c.header("welcome to ATM v1.0"))

	for {
		c.printMenu()
		line, err := c.readLine()
		if err != nil {
			break
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "1", "login":
			c.login()
		case "2", "deposit":
			c.deposit()
		case "3", "withdraw":
			c.withdraw()
		case "4", "transfer":
			c.transfer()
		case "5", "paybill", "pay bill":
			c.payBill()
		case "6", "create", "create new account":
			c.createAccount()
		case "7", "delete", "delete account":
			c.deleteAccount()
		case "8", "disable", "disable account":
			c.disableAccount()
		case "9", "changeplan", "change plan":
			c.changePlan()
		case "10", "logout":
			c.logout()
		case "exit", "quit":
			c.exit()
			return nil
		case "":
		default:
			c.println(c.fail("not an option, try again"))
		}
	}

	c.exit()
	return nil
}

func (c *Console) printMenu() {
	c.println("")
	c.println("1. login")
	c.println("2. deposit")
	c.println("3. withdraw")
	c.println("4. transfer")
	c.println("5. pay bill")
	c.println("6. create new account")
	c.println("7. delete account")
	c.println("8. disable account")
	c.println("9. change plan")
	c.println("10. logout")
}

func (c *Console) login() {
	kind, err := c.prompt("session type (standard/admin):")
	if err != nil {
		return
	}

	holder := ""
	if strings.ToLower(strings.TrimSpace(kind)) == "standard" {
		if holder, err = c.prompt("account holder name:"); err != nil {
			return
		}
	}

	if err := c.eng.Login(kind, holder); err != nil {
		c.println(c.fail(err.Error()))
		return
	}
	c.println(c.ok("you have logged in successfully"))
}

func (c *Console) logout() {
	if err := c.eng.Logout(); err != nil {
		c.println(c.fail(err.Error()))
		return
	}
	c.println(c.ok("you have logged out successfully"))
}

func (c *Console) deposit() {
	holder, number, err := c.promptTarget()
	if err != nil {
		return
	}
	amount, err := c.promptAmount("deposit amount:")
	if err != nil {
		return
	}

	balance, err := c.eng.Deposit(holder, number, amount)
	if err != nil {
		c.println(c.fail(err.Error()))
		return
	}
	c.printf("deposited $%s; funds are available next session\n", shared.FormatAmount(amount))
	c.printBalance(balance)
}

func (c *Console) withdraw() {
	holder, number, err := c.promptTarget()
	if err != nil {
		return
	}
	amount, err := c.promptAmount("withdrawal amount:")
	if err != nil {
		return
	}

	balance, err := c.eng.Withdraw(holder, number, amount)
	if err != nil {
		c.println(c.fail(err.Error()))
		return
	}
	c.printf("withdrew $%s\n", shared.FormatAmount(amount))
	c.printBalance(balance)
}

func (c *Console) transfer() {
	holder, sender, err := c.promptTarget()
	if err != nil {
		return
	}
	receiver, err := c.prompt("receiver account number:")
	if err != nil {
		return
	}
	amount, err := c.promptAmount("transfer amount:")
	if err != nil {
		return
	}

	balance, err := c.eng.Transfer(holder, sender, receiver, amount)
	if err != nil {
		c.println(c.fail(err.Error()))
		return
	}
	c.printf("transferred $%s\n", shared.FormatAmount(amount))
	c.printBalance(balance)
}

func (c *Console) payBill() {
	holder, number, err := c.promptTarget()
	if err != nil {
		return
	}
	company, err := c.prompt("company code (EC/CQ/FI):")
	if err != nil {
		return
	}
	amount, err := c.promptAmount("bill amount:")
	if err != nil {
		return
	}

	balance, err := c.eng.PayBill(holder, number, strings.ToUpper(strings.TrimSpace(company)), amount)
	if err != nil {
		c.println(c.fail(err.Error()))
		return
	}
	c.printf("paid bill of $%s\n", shared.FormatAmount(amount))
	c.printBalance(balance)
}

func (c *Console) createAccount() {
	name, err := c.prompt("account holder name:")
	if err != nil {
		return
	}
	balance, err := c.promptAmount("initial balance:")
	if err != nil {
		return
	}

	acct, err := c.eng.CreateAccount(name, balance)
	if err != nil {
		c.println(c.fail(err.Error()))
		return
	}
	c.printf("created account %s for %s; available next session\n", acct.Number, acct.HolderName)
}

func (c *Console) deleteAccount() {
	name, number, err := c.promptHolderAndNumber()
	if err != nil {
		return
	}
	if err := c.eng.DeleteAccount(name, number); err != nil {
		c.println(c.fail(err.Error()))
		return
	}
	c.printf("deleted account %s\n", number)
}

func (c *Console) disableAccount() {
	name, number, err := c.promptHolderAndNumber()
	if err != nil {
		return
	}
	if err := c.eng.DisableAccount(name, number); err != nil {
		c.println(c.fail(err.Error()))
		return
	}
	c.printf("disabled account %s\n", number)
}

func (c *Console) changePlan() {
	name, number, err := c.promptHolderAndNumber()
	if err != nil {
		return
	}
	if err := c.eng.ChangePlan(name, number); err != nil {
		c.println(c.fail(err.Error()))
		return
	}
	c.printf("changed plan on account %s\n", number)
}

func (c *Console) exit() {
	if c.eng.LoggedIn() {
		if err := c.eng.Logout(); err != nil {
			c.println(c.fail(err.Error()))
		}
	}
	c.println("goodbye")
}

// promptTarget collects the inputs of the common account-scoped
// preamble: admin sessions name the holder, standard sessions act as
// themselves.
func (c *Console) promptTarget() (holder, number string, err error) {
	if c.eng.IsAdmin() {
		if holder, err = c.prompt("account holder name:"); err != nil {
			return "", "", err
		}
	}
	if number, err = c.prompt("account number:"); err != nil {
		return "", "", err
	}
	return holder, strings.TrimSpace(number), nil
}

func (c *Console) promptHolderAndNumber() (name, number string, err error) {
	if name, err = c.prompt("account holder name:"); err != nil {
		return "", "", err
	}
	if number, err = c.prompt("account number:"); err != nil {
		return "", "", err
	}
	return name, strings.TrimSpace(number), nil
}

func (c *Console) promptAmount(label string) (int64, error) {
	line, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	amount, err := shared.ParseAmount(line)
	if err != nil {
		c.println(c.fail(err.Error()))
		return 0, err
	}
	return amount, nil
}

func (c *Console) prompt(label string) (string, error) {
	c.println(label)
	return c.readLine()
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			c.logger.Error("reading operator input", "error", err)
			return "", err
		}
		return "", errInputClosed
	}
	return c.in.Text(), nil
}

func (c *Console) printBalance(balance int64) {
	c.printf("current balance: $%s\n", shared.FormatAmount(balance))
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
