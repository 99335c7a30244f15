package cockroach

import "github.com/syssam/sqldialect/dialect"

// functions returns the function templates known to the profile.
func functions() []dialect.Function {
	return []dialect.Function{
		// String functions.
		dialect.Fn("ascii", "ascii(?1)"),
		dialect.Fn("chr", "chr(?1)"),
		dialect.Fn("char", "chr(?1)"),
		dialect.Fn("overlay", "overlay(?1 placing ?2 from ?3)"),
		dialect.Fn("position", "position(?1 in ?2)"),
		dialect.Fn("substring", "substring(?1 from ?2 for ?3)"),
		dialect.Fn("locate", "position(?1 in ?2)"),
		dialect.Fn("ltrim", "ltrim(?1,?2)"),
		dialect.Fn("rtrim", "rtrim(?1,?2)"),
		dialect.Fn("substr", "substr(?1,?2,?3)"),
		dialect.Fn("reverse", "reverse(?1)"),
		dialect.Fn("repeat", "repeat(?1,?2)"),
		dialect.Fn("md5", "md5(?1)"),
		dialect.Fn("sha1", "sha1(?1)"),
		dialect.Fn("octet_length", "octet_length(?1)"),
		dialect.Fn("bit_length", "bit_length(?1)"),
		// Numeric functions.
		dialect.Fn("cbrt", "cbrt(?1)"),
		dialect.Fn("cot", "cot(?1)"),
		dialect.Fn("degrees", "degrees(?1)"),
		dialect.Fn("radians", "radians(?1)"),
		dialect.Fn("pi", "pi()"),
		// TODO: emulate the two-argument form.
		dialect.Fn("trunc", "trunc(?1)"),
		// Formatting.
		dialect.Fn("format", "experimental_strftime(?1,?2)"),
		// Window functions.
		dialect.Fn("row_number", "row_number()"),
		dialect.Fn("rank", "rank()"),
		dialect.Fn("dense_rank", "dense_rank()"),
		dialect.Fn("percent_rank", "percent_rank()"),
		dialect.Fn("cume_dist", "cume_dist()"),
		dialect.Fn("ntile", "ntile(?1)"),
		dialect.Fn("lag", "lag(?1)"),
		dialect.Fn("lead", "lead(?1)"),
		dialect.Fn("first_value", "first_value(?1)"),
		dialect.Fn("last_value", "last_value(?1)"),
		dialect.Fn("nth_value", "nth_value(?1,?2)"),
		// Aggregates.
		dialect.Fn("listagg", "string_agg(cast(?1 as string),?2)"),
		dialect.Fn("string_agg", "string_agg(?1,?2)"),
		dialect.Fn("percentile_cont", "percentile_cont(?1) within group (order by ?2)"),
		dialect.Fn("percentile_disc", "percentile_disc(?1) within group (order by ?2)"),
		dialect.Fn("mode", "mode() within group (order by ?1)"),
		// Misc.
		dialect.VarFn("concat", "concat(?1)"),
		dialect.VarFn("coalesce", "coalesce(?1)"),
	}
}
