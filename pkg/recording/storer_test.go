package recording_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/streamcast/pkg/recording"
)

var storers = []struct {
	name string
	new  func() (recording.Storer, error)
}{
	{"MemoryStorer", func() (recording.Storer, error) {
		return recording.NewMemoryStorer(), nil
	}},
	{"SQLiteStorer", func() (recording.Storer, error) {
		return recording.NewSQLiteStorer(":memory:")
	}},
}

var _ = Describe("Storer", func() {
	for _, impl := range storers {
		Describe(impl.name, func() {
			var (
				storer recording.Storer
				ctx    context.Context
			)

			BeforeEach(func() {
				ctx = context.Background()
				var err error
				storer, err = impl.new()
				Expect(err).NotTo(HaveOccurred())
				DeferCleanup(storer.Close)
			})

			It("starts empty", func() {
				n, err := storer.Len(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(Equal(0))

				records, err := storer.List(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())

				_, err = storer.Head(ctx)
				Expect(err).To(BeAssignableToTypeOf(recording.ErrNotFound{}))
			})

			It("chains appended records", func() {
				at := time.Now()
				first, err := storer.Append(ctx, "\x1b[32mA\x1b[0m", at)
				Expect(err).NotTo(HaveOccurred())
				second, err := storer.Append(ctx, "B", at.Add(time.Second))
				Expect(err).NotTo(HaveOccurred())

				Expect(first.Seq).To(Equal(0))
				Expect(second.Seq).To(Equal(1))
				Expect(*second.ParentHash).To(Equal(first.Hash))

				records, err := storer.List(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].Data).To(Equal("\x1b[32mA\x1b[0m"))
				Expect(records[1].Data).To(Equal("B"))
				Expect(records[1].ReceivedAt.Sub(records[0].ReceivedAt)).To(Equal(time.Second))
				Expect(recording.Verify(records)).To(Succeed())
			})

			It("gets records by hash", func() {
				r, err := storer.Append(ctx, "hello", time.Now())
				Expect(err).NotTo(HaveOccurred())

				got, err := storer.Get(ctx, r.Hash)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.Data).To(Equal("hello"))
				Expect(got.ParentHash).To(BeNil())
			})

			It("reports missing hashes", func() {
				_, err := storer.Get(ctx, "nonexistent")
				Expect(err).To(Equal(recording.ErrNotFound{Hash: "nonexistent"}))
				Expect(err.Error()).To(Equal("record not found: nonexistent"))
			})

			It("tracks the head", func() {
				_, err := storer.Append(ctx, "a", time.Now())
				Expect(err).NotTo(HaveOccurred())
				last, err := storer.Append(ctx, "b", time.Now())
				Expect(err).NotTo(HaveOccurred())

				head, err := storer.Head(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(head.Hash).To(Equal(last.Hash))

				n, err := storer.Len(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(Equal(2))
			})

			It("resets", func() {
				_, err := storer.Append(ctx, "a", time.Now())
				Expect(err).NotTo(HaveOccurred())
				Expect(storer.Reset(ctx)).To(Succeed())

				n, err := storer.Len(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(Equal(0))

				r, err := storer.Append(ctx, "fresh", time.Now())
				Expect(err).NotTo(HaveOccurred())
				Expect(r.Seq).To(Equal(0))
				Expect(r.ParentHash).To(BeNil())
			})

			It("serialises concurrent appends into one chain", func() {
				var wg sync.WaitGroup
				for range 20 {
					wg.Add(1)
					go func() {
						defer wg.Done()
						defer GinkgoRecover()
						_, err := storer.Append(ctx, "x", time.Now())
						Expect(err).NotTo(HaveOccurred())
					}()
				}
				wg.Wait()

				records, err := storer.List(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(20))
				Expect(recording.Verify(records)).To(Succeed())
			})
		})
	}
})

var _ = Describe("SQLiteStorer", func() {
	It("persists to a file", func() {
		ctx := context.Background()
		dbPath := filepath.Join(GinkgoT().TempDir(), "recording.db")

		s, err := recording.NewSQLiteStorer(dbPath)
		Expect(err).NotTo(HaveOccurred())
		_, err = s.Append(ctx, "one", time.Now())
		Expect(err).NotTo(HaveOccurred())
		_, err = s.Append(ctx, "two", time.Now())
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Close()).To(Succeed())

		_, err = os.Stat(dbPath)
		Expect(err).NotTo(HaveOccurred())

		reopened, err := recording.NewSQLiteStorer(dbPath)
		Expect(err).NotTo(HaveOccurred())
		defer reopened.Close()

		records, err := reopened.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
		Expect(recording.Verify(records)).To(Succeed())

		next, err := reopened.Append(ctx, "three", time.Now())
		Expect(err).NotTo(HaveOccurred())
		Expect(next.Seq).To(Equal(2))
	})
})
