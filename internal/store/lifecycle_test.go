package store_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/store"
)

var _ = Describe("Store lifecycle", func() {
	var st *store.Store

	BeforeEach(func() {
		st = store.New()
	})

	It("starts empty", func() {
		Expect(st.State()).To(Equal(store.Empty))
		Expect(st.All()).To(BeEmpty())
	})

	Context("after the first append", func() {
		BeforeEach(func() {
			st.Append(dynamo.NewSeries(3), "α=45°, v₀=100, h=0.1")
		})

		It("is populated", func() {
			Expect(st.State()).To(Equal(store.Populated))
			Expect(st.Len()).To(Equal(1))
		})

		It("styles the record with the first palette entry", func() {
			Expect(st.All()[0].Style).To(Equal(store.Palette()[0]))
		})

		It("stays populated on further appends", func() {
			st.Append(dynamo.NewSeries(2), "second")
			Expect(st.State()).To(Equal(store.Populated))
			Expect(st.All()).To(HaveLen(2))
			Expect(st.All()[1].Label).To(Equal("second"))
		})

		It("returns to empty on clear", func() {
			st.Clear()
			Expect(st.State()).To(Equal(store.Empty))
			Expect(st.All()).To(BeEmpty())
		})
	})

	It("treats clear on an empty store as a no-op", func() {
		Expect(st.Clear).NotTo(Panic())
		Expect(st.State()).To(Equal(store.Empty))
	})
})
