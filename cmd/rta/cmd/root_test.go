package cmd

import (
	"bytes"
	"database/sql"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rta/rta"
	"github.com/sarchlab/rta/tracing"
)

var _ = Describe("Root command", func() {
	var (
		stdout *bytes.Buffer
		stderr *bytes.Buffer
	)

	execute := func(args ...string) error {
		c := newRootCmd()
		c.SetArgs(args)
		c.SetOut(stdout)
		c.SetErr(stderr)

		return c.Execute()
	}

	BeforeEach(func() {
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)
	})

	It("should print the result on one line", func() {
		Expect(execute()).To(Succeed())

		Expect(stdout.String()).To(Equal("[50 15 5]\n"))
		Expect(stderr.String()).To(BeEmpty())
	})

	It("should reject arguments", func() {
		Expect(execute("extra")).NotTo(Succeed())
		Expect(stdout.String()).To(BeEmpty())
		Expect(stderr.String()).To(ContainSubstring("Error:"))
		Expect(stderr.String()).NotTo(ContainSubstring("Usage:"))
	})

	It("should fail when the iteration cap is too low", func() {
		err := execute("--max-iterations", "3")

		Expect(err).To(MatchError(rta.ErrNotConverged))
		Expect(stdout.String()).To(BeEmpty())
		Expect(stderr.String()).To(ContainSubstring("Error:"))
	})

	It("should log every pass in verbose mode", func() {
		Expect(execute("--verbose")).To(Succeed())

		Expect(stdout.String()).To(Equal("[50 15 5]\n"))
		Expect(stderr.String()).To(ContainSubstring("task 0 step 4: 45 -> 50"))
		Expect(stderr.String()).To(ContainSubstring("task 0: 5 steps"))
	})

	It("should record the passes into SQLite", func() {
		path := filepath.Join(GinkgoT().TempDir(), "trace")

		Expect(execute("--trace-db", path)).To(Succeed())

		db, err := sql.Open("sqlite3", path+".sqlite3")
		Expect(err).NotTo(HaveOccurred())
		defer db.Close()

		var n int
		Expect(db.QueryRow(
			"SELECT COUNT(*) FROM " + tracing.IterationTableName,
		).Scan(&n)).To(Succeed())
		Expect(n).To(Equal(9))
	})
})
