package theme

// straightThemes lists the straight arrangements per piece count.
var straightThemes = map[int][]Theme{
	2: {
		t("rows", line(0, h, 1.0/2)),
		t("columns", line(0, v, 1.0/2)),
		t("short-top", line(0, h, 1.0/3)),
		t("short-bottom", line(0, h, 2.0/3)),
		t("narrow-left", line(0, v, 1.0/3)),
		t("narrow-right", line(0, v, 2.0/3)),
	},
	3: {
		t("rows", parts(0, 3, h)),
		t("columns", parts(0, 3, v)),
		t("split-top", line(0, h, 1.0/2), line(0, v, 1.0/2)),
		t("split-bottom", line(0, h, 1.0/2), line(1, v, 1.0/2)),
		t("split-left", line(0, v, 1.0/2), line(0, h, 1.0/2)),
		t("split-right", line(0, v, 1.0/2), line(1, h, 1.0/2)),
		t("banner-over-pair", line(0, h, 1.0/3), line(1, v, 1.0/2)),
		t("sidebar-and-stack", line(0, v, 1.0/3), line(1, h, 1.0/2)),
	},
	4: {
		t("rows", parts(0, 4, h)),
		t("columns", parts(0, 4, v)),
		t("half-over-three", line(0, h, 1.0/2), parts(0, 3, v)),
		t("three-over-large", line(0, h, 1.0/3), parts(0, 3, v)),
		t("large-over-three", line(0, h, 2.0/3), parts(1, 3, v)),
		t("three-beside-large", line(0, v, 1.0/3), parts(0, 3, h)),
		t("large-beside-three", line(0, v, 2.0/3), parts(1, 3, h)),
		t("left-and-right-stack", line(0, v, 1.0/2), line(1, h, 2.0/3), line(1, h, 1.0/3)),
		t("bands-split-middle", line(0, h, 1.0/4), line(0, h, 3.0/4), line(1, v, 1.0/2)),
		t("pillars-split-middle", line(0, v, 1.0/4), line(0, v, 3.0/4), line(1, h, 1.0/2)),
		t("stack-beside-half", line(0, v, 1.0/2), parts(0, 3, h)),
		t("quarter-split", line(0, h, 1.0/3), line(0, h, 1.0/2), line(0, v, 1.0/2)),
	},
	5: {
		t("rows", parts(0, 5, h)),
		t("columns", parts(0, 5, v)),
		t("two-over-three", line(0, h, 2.0/5), line(0, v, 1.0/2), parts(2, 3, v)),
		t("three-over-two", line(0, h, 3.0/5), parts(0, 3, v), line(3, v, 1.0/2)),
		t("two-beside-three", line(0, v, 2.0/5), parts(0, 3, h), line(1, h, 1.0/2)),
		t("three-beside-two", line(0, v, 2.0/5), parts(1, 3, h), line(0, h, 1.0/2)),
		t("hero-over-four", line(0, h, 3.0/4), parts(1, 4, v)),
		t("four-over-hero", line(0, h, 1.0/4), parts(0, 4, v)),
		t("hero-beside-four", line(0, v, 3.0/4), parts(1, 4, h)),
		t("four-beside-hero", line(0, v, 1.0/4), parts(0, 4, h)),
		t("banded-pairs", line(0, h, 1.0/4), line(1, h, 2.0/3), line(0, v, 1.0/2), line(3, v, 1.0/2)),
		t("pillared-pairs", line(0, v, 1.0/4), line(1, v, 2.0/3), line(0, h, 1.0/2), line(2, h, 1.0/2)),
		t("cross-top-left", cross(0, 1.0/3, 1.0/3), line(2, h, 1.0/2)),
		t("cross-bottom-right", cross(0, 2.0/3, 2.0/3), line(1, h, 1.0/2)),
		t("cross-top-right", cross(0, 1.0/3, 2.0/3), line(3, h, 1.0/2)),
		t("cross-bottom-left", cross(0, 2.0/3, 1.0/3), line(0, h, 1.0/2)),
		t("spiral", spiral(0)),
		t("grid-over-bar", line(0, h, 2.0/3), grid(0, 2, 2)),
		t("column-and-stack", line(0, v, 2.0/3), line(1, h, 1.0/3), line(0, h, 2.0/3), line(0, h, 1.0/3)),
	},
	6: {
		t("grid-3x2", grid(0, 3, 2)),
		t("grid-2x3", grid(0, 2, 3)),
		t("cross-split-bottom", cross(0, 2.0/3, 1.0/2), line(3, v, 1.0/2), line(2, v, 1.0/2)),
		t("cross-split-right", cross(0, 1.0/2, 2.0/3), line(3, h, 1.0/2), line(1, h, 1.0/2)),
		t("cross-split-left", cross(0, 1.0/2, 1.0/3), line(2, h, 1.0/2), line(0, h, 1.0/2)),
		t("cross-split-top", cross(0, 1.0/3, 1.0/2), line(1, v, 1.0/2), line(0, v, 1.0/2)),
		t("hero-over-five", line(0, h, 4.0/5), parts(1, 5, v)),
		t("staggered", line(0, h, 1.0/4), line(1, h, 2.0/3), line(1, v, 1.0/4), line(2, v, 2.0/3), line(4, v, 1.0/2)),
		t("cross-corner-top-left", cross(0, 1.0/3, 1.0/3), line(1, v, 1.0/2), line(4, h, 1.0/2)),
		t("cross-corner-bottom-left", cross(0, 2.0/3, 1.0/3), line(3, v, 1.0/2), line(0, h, 1.0/2)),
		t("cross-corner-bottom-right", cross(0, 2.0/3, 2.0/3), line(2, v, 1.0/2), line(1, h, 1.0/2)),
		t("cross-corner-top-right", cross(0, 1.0/3, 2.0/3), line(3, h, 1.0/2), line(0, v, 1.0/2)),
	},
	7: {
		t("three-over-four", line(0, h, 1.0/2), parts(1, 4, v), parts(0, 3, v)),
		t("three-beside-four", line(0, v, 1.0/2), parts(1, 4, h), parts(0, 3, h)),
		t("banner-over-grid", line(0, h, 1.0/2), grid(1, 2, 3)),
		t("cross-over-three", line(0, h, 2.0/3), parts(1, 3, v), cross(0, 1.0/2, 1.0/2)),
		t("columns-split-sides", parts(0, 3, v), parts(2, 3, h), parts(0, 3, h)),
		t("stacked-mosaic", line(0, h, 2.0/3), line(1, v, 3.0/4), line(0, h, 1.0/2), line(1, v, 2.0/5), parts(0, 3, v)),
		t("columned-mosaic", line(0, v, 2.0/3), line(1, h, 3.0/4), line(0, v, 1.0/2), line(1, h, 2.0/5), parts(0, 3, h)),
		t("pillar-mosaic", line(0, v, 1.0/4), line(1, v, 2.0/3), line(2, h, 1.0/2), line(1, h, 3.0/4), line(1, h, 1.0/3), line(0, h, 1.0/2)),
		t("banded-triples", line(0, h, 1.0/4), line(1, h, 2.0/3), parts(2, 3, v), parts(0, 3, v)),
	},
	8: {
		t("grid-4x2", grid(0, 4, 2)),
		t("grid-2x4", grid(0, 2, 4)),
		t("columns-rising", parts(0, 4, v), line(3, h, 4.0/5), line(2, h, 3.0/5), line(1, h, 2.0/5), line(0, h, 1.0/5)),
		t("rows-rising", parts(0, 4, h), line(3, v, 4.0/5), line(2, v, 3.0/5), line(1, v, 2.0/5), line(0, v, 1.0/5)),
		t("columns-falling", parts(0, 4, v), line(3, h, 1.0/5), line(2, h, 2.0/5), line(1, h, 3.0/5), line(0, h, 4.0/5)),
		t("rows-falling", parts(0, 4, h), line(3, v, 1.0/5), line(2, v, 2.0/5), line(1, v, 3.0/5), line(0, v, 4.0/5)),
		t("rows-of-three-two-three", parts(0, 3, h), parts(2, 3, v), parts(1, 2, v), parts(0, 3, v)),
		t("columns-of-three-two-three", parts(0, 3, v), parts(2, 3, h), parts(1, 2, h), parts(0, 3, h)),
		t("quad-over-five", line(0, h, 4.0/5), parts(1, 5, v), line(0, h, 1.0/2), line(1, v, 1.0/2)),
		t("rows-mixed", parts(0, 3, h), parts(2, 2, v), parts(1, 3, v), line(0, v, 3.0/4), line(0, v, 1.0/3)),
		t("grid-3x2-split-bottom", grid(0, 3, 2), line(5, v, 1.0/2), line(4, v, 1.0/2)),
	},
	9: {
		t("grid-3x3", grid(0, 3, 3)),
		t("columns-of-three-and-four", line(0, v, 3.0/4), line(0, v, 1.0/3), parts(2, 4, h), parts(0, 4, h)),
		t("rows-of-three-and-four", line(0, h, 3.0/4), line(0, h, 1.0/3), parts(2, 4, v), parts(0, 4, v)),
		t("rows-split-thirds", line(0, h, 3.0/4), line(0, h, 1.0/3), parts(2, 3, v), line(1, v, 3.0/4), line(1, v, 1.0/3), parts(0, 3, v)),
		t("columns-split-thirds", line(0, v, 3.0/4), line(0, v, 1.0/3), parts(2, 3, h), line(1, h, 3.0/4), line(1, h, 1.0/3), parts(0, 3, h)),
		t("columns-banded", parts(0, 3, v), line(2, h, 3.0/4), line(2, h, 1.0/3), parts(1, 3, h), line(0, h, 3.0/4), line(0, h, 1.0/3)),
		t("rows-banded", parts(0, 3, h), line(2, v, 3.0/4), line(2, v, 1.0/3), parts(1, 3, v), line(0, v, 3.0/4), line(0, v, 1.0/3)),
		t("banner-over-grid", line(0, h, 1.0/2), grid(1, 2, 4)),
	},
}
