package cost_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vela-sim/microcore/timing/cost"
)

var _ = Describe("Model", func() {
	It("defaults to the reference 1GHz cost model", func() {
		m := cost.DefaultModel()
		Expect(m.FetchNS).To(BeEquivalentTo(1))
		Expect(m.HitNS).To(BeEquivalentTo(1))
		Expect(m.MissNS).To(BeEquivalentTo(80))
	})

	It("round-trips through SaveModel/LoadModel", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "model.json")

		m := &cost.Model{FetchNS: 2, HitNS: 3, MissNS: 120}
		Expect(m.SaveModel(path)).To(Succeed())

		loaded, err := cost.LoadModel(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(Equal(m))
	})

	It("keeps defaults for fields omitted from the JSON file", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "partial.json")
		Expect(os.WriteFile(path, []byte(`{"miss_ns": 200}`), 0o644)).To(Succeed())

		loaded, err := cost.LoadModel(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.FetchNS).To(BeEquivalentTo(1))
		Expect(loaded.HitNS).To(BeEquivalentTo(1))
		Expect(loaded.MissNS).To(BeEquivalentTo(200))
	})

	It("errors when the file does not exist", func() {
		_, err := cost.LoadModel("/nonexistent/path/model.json")
		Expect(err).To(HaveOccurred())
	})
})
